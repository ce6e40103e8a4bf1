package pipeline

import (
	"github.com/gduarte/massing/pkg/render"
)

// RenderArtifacts renders a solved batch into every requested format
// without caching. The map is keyed by format name.
func RenderArtifacts(solved *Solved, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	in := render.Input{
		Records:  solved.Records,
		Stats:    solved.Batch,
		Warnings: solved.Warnings,
		Dropped:  solved.Dropped,
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := render.Render(in, format)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
