// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "golang.org/x/text/unicode/bidi"

// ClusterFlagsForText returns the cluster flags for a run of text: the
// clusters of a run whose first directional run is right-to-left map
// glyphs backward.
func ClusterFlagsForText(text string) ClusterFlags {
	if text == "" {
		return 0
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return 0
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return 0
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return ClusterBackward
	}
	return 0
}

// Validate checks that the clusters of t cover its text and glyphs
// exactly. Text without clusters is always valid.
func (t *Text) Validate() bool {
	if len(t.Clusters) == 0 {
		return true
	}
	bytes, glyphs := 0, 0
	for _, c := range t.Clusters {
		if c.NumBytes < 0 || c.NumGlyphs < 0 || c.NumBytes+c.NumGlyphs == 0 {
			return false
		}
		bytes += c.NumBytes
		glyphs += c.NumGlyphs
	}
	return bytes == len(t.UTF8) && glyphs == len(t.Glyphs)
}
