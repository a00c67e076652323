package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/bethropolis/tidecore/internal/logger"
	"github.com/bethropolis/tidecore/internal/workspace"
)

// runScript executes each line of r in ws. Status messages go to out,
// failures to errOut prefixed with the script position. It returns the
// number of failed lines; execution continues past failures.
func runScript(ws *workspace.Workspace, name string, r io.Reader, out, errOut io.Writer) int {
	failed := 0
	status := ws.Status()
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if err := ws.Execute(line); err != nil {
			failed++
			logger.Warnf("Script %s:%d: %v", name, lineNo, err)
			fmt.Fprintf(errOut, "%s:%d: %v\n", name, lineNo, err)
			continue
		}
		if s := ws.Status(); s != status {
			status = s
			fmt.Fprintf(out, "-- %s\n", s)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "%s: %v\n", name, err)
		failed++
	}
	return failed
}
