package engine

import (
	"strings"
	"testing"
)

func TestPipelineLibrary(t *testing.T) {
	tests := []struct {
		Pipeline Pipeline
		Uniforms []string
	}{
		{PipelineDepth, []string{"model", "view", "projection"}},
		{PipelineMain, []string{"model", "view", "projection", "smoothness"}},
	}

	for _, c := range tests {
		data, found := pipelineLibrary[c.Pipeline]
		if !found {
			t.Errorf("pipeline %v missing from library", c.Pipeline)
			continue
		}

		if data.vertex == "" || data.fragment == "" {
			t.Errorf("pipeline %v has empty shader sources", c.Pipeline)
		}

		// attribute slot 0 must be the position attribute, slot 1 the
		// normal, matching the vertex layout uploaded by Build
		if len(data.attributes) != 2 || data.attributes[0] != "position" || data.attributes[1] != "normal" {
			t.Errorf("pipeline %v attributes = %v, expected [position normal]", c.Pipeline, data.attributes)
		}

		for i, u := range c.Uniforms {
			if i >= len(data.uniforms) || data.uniforms[i] != u {
				t.Errorf("pipeline %v uniforms = %v, expected %v", c.Pipeline, data.uniforms, c.Uniforms)
				break
			}
		}

		for _, u := range data.uniforms {
			if !strings.Contains(data.vertex, u) && !strings.Contains(data.fragment, u) {
				t.Errorf("pipeline %v declares uniform %q that no shader stage references", c.Pipeline, u)
			}
		}
	}
}
