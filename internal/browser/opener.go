package browser

import (
	"fmt"
	"os/exec"

	"github.com/jeanhaley32/repolink/internal/platform"
)

// Opener displays a URL to the user.
type Opener interface {
	Open(url string) error
}

// CommandStarter launches a process without waiting for it to exit.
type CommandStarter func(name string, args ...string) error

// SystemOpener opens URLs with the desktop's default browser.
type SystemOpener struct {
	os    platform.OS
	start CommandStarter
}

// NewOpener creates an opener for the current operating system.
func NewOpener() *SystemOpener {
	return NewOpenerFor(platform.Detect(), startDetached)
}

// NewOpenerFor creates an opener for a specific OS and process starter.
func NewOpenerFor(os platform.OS, start CommandStarter) *SystemOpener {
	return &SystemOpener{os: os, start: start}
}

// Open launches the browser and returns once it has been started.
// Whatever the browser does with the URL afterwards is not observed.
func (o *SystemOpener) Open(url string) error {
	name, args, err := Command(o.os, url)
	if err != nil {
		return err
	}
	if err := o.start(name, args...); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// Command returns the program and arguments that open url on os.
func Command(os platform.OS, url string) (string, []string, error) {
	switch os {
	case platform.MacOS:
		return "open", []string{url}, nil
	case platform.Linux:
		return "xdg-open", []string{url}, nil
	case platform.Windows:
		// start would reinterpret & and ^ in the query string.
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", os)
	}
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
