package engine

import (
	"fmt"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfw init/terminate is process-wide state, but renderers come and go
// independently. The shared handle is refcounted so tearing down one
// renderer cannot strip the subsystem out from under another.
var glfwShared struct {
	refs int
	sync.Mutex
}

func acquireGLFW() error {
	glfwShared.Lock()
	defer glfwShared.Unlock()

	if glfwShared.refs == 0 {
		if err := glfw.Init(); err != nil {
			return fmt.Errorf("failed to initialize glfw: %w", err)
		}
	}

	glfwShared.refs++
	return nil
}

func releaseGLFW() {
	glfwShared.Lock()
	defer glfwShared.Unlock()

	if glfwShared.refs == 0 {
		return
	}

	glfwShared.refs--
	if glfwShared.refs == 0 {
		glfw.Terminate()
	}
}
