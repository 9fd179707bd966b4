package console

import (
	"os"
	"os/exec"
	"strings"

	"github.com/figtools/fig/pkg/logger"
)

var pagerLog = logger.New("console:pager")

// Page pipes content through the user's pager. $PAGER is honored, falling
// back to "less -R". The caller is expected to fall back to plain printing
// when Page returns an error.
func Page(content string) error {
	pager := os.Getenv("PAGER")
	if pager == "" {
		pager = "less -R"
	}

	parts := strings.Fields(pager)
	if len(parts) == 0 {
		return exec.ErrNotFound
	}
	pagerLog.Printf("Paging %d bytes through %q", len(content), pager)

	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
