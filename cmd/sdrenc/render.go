package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/htm-community/sdrenc/sdr"
)

var (
	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	onStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	offStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type printer struct {
	out   io.Writer
	plain bool
}

func newPrinter(out io.Writer, plain bool) *printer {
	return &printer{out: out, plain: plain}
}

func (p *printer) print(value string, s *sdr.SDR) {
	if p.plain {
		fmt.Fprintf(p.out, "%s\t%s\n", value, s.String())
		return
	}
	fmt.Fprintf(p.out, "%s\t%s\n", valueStyle.Render(value), renderBits(s))
}

//Renders runs of equal bits with one style each
func renderBits(s *sdr.SDR) string {
	bits := s.String()
	var sb strings.Builder
	for start := 0; start < len(bits); {
		end := start
		for end < len(bits) && bits[end] == bits[start] {
			end++
		}
		run := bits[start:end]
		if run[0] == '1' {
			sb.WriteString(onStyle.Render(run))
		} else {
			sb.WriteString(offStyle.Render(run))
		}
		start = end
	}
	return sb.String()
}
