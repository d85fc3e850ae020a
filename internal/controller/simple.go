package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "badwords.dev/pkg/badwords/internal/model"
)

// Terminal palette indexes.
const (
	colorRed           = lipgloss.Color("1")
	colorBlue          = lipgloss.Color("4")
	colorCyan          = lipgloss.Color("6")
	colorBrightGreen   = lipgloss.Color("10")
	colorBrightMagenta = lipgloss.Color("13")
)

// SimpleUI implements UI by printing lines to the cobra command's streams.
type SimpleUI struct {
	cmd   *cobra.Command
	color ColorMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, color ColorMode) *SimpleUI {
	return &SimpleUI{cmd: cmd, color: color}
}

// SetColorMode changes the color mode used for subsequent output.
func (s *SimpleUI) SetColorMode(color ColorMode) {
	s.color = color
}

// DisplayRepo prints the resolved git directory.
func (s *SimpleUI) DisplayRepo(ctx context.Context, repo m.Repo) {
	if err := ctx.Err(); err != nil {
		return
	}

	out := s.cmd.OutOrStdout()
	style := s.style(out).Foreground(colorCyan)
	s.println(out, style.Render("[git]:"+string(repo.GitDir)))
}

// DisplayRepoRootNotFound warns that no git repository encloses startDir.
func (s *SimpleUI) DisplayRepoRootNotFound(ctx context.Context, startDir m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.println(s.cmd.ErrOrStderr(), fmt.Sprintf("Git-repository top of %q not found.", startDir))
}

// DisplayFileError reports a file that was skipped because it could not be read.
func (s *SimpleUI) DisplayFileError(ctx context.Context, path m.Path, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	s.println(s.cmd.ErrOrStderr(), fmt.Sprintf("skipped %s: %v", path, err))
}

// DisplayFindings prints the configuration followed by every matching line of result.
func (s *SimpleUI) DisplayFindings(ctx context.Context, cfg m.Configuration, result m.GroupResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	out := s.cmd.OutOrStdout()
	header := s.style(out).Foreground(colorBrightMagenta)
	groupStyle := s.style(out).Foreground(colorBlue)
	wordStyle := s.style(out).Foreground(colorRed)

	s.println(out, header.Render("bad_words:"))

	for _, g := range cfg.Groups {
		s.println(out, "  "+groupStyle.Render(g.Name+":")+" "+strings.Join(g.Words, ", "))
	}

	s.println(out, header.Render("found:"))

	for _, file := range result.Files {
		for _, line := range file.Lines {
			text := highlight(line.Source, line.Matches, func(w string) string {
				return wordStyle.Render(w)
			})
			s.println(out, fmt.Sprintf("  %s [str: %d] %s", file.File, line.Row, text))
		}
	}
}

// DisplaySuccess prints the single line shown when nothing was found.
func (s *SimpleUI) DisplaySuccess(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	out := s.cmd.OutOrStdout()
	style := s.style(out).Foreground(colorBrightGreen)
	s.println(out, style.Render("[success]")+"  Bad words not found.")
}

// DisplayPlan renders a table of groups and the staged files each would scan.
func (s *SimpleUI) DisplayPlan(ctx context.Context, plans []m.GroupPlan) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderPlanTable(plans))

	return nil
}

func renderPlanTable(plans []m.GroupPlan) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Group", "Patterns", "Words", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
	})

	total := 0

	for _, plan := range plans {
		files := make([]string, 0, len(plan.Files))
		for _, f := range plan.Files {
			files = append(files, string(f))
		}

		if len(files) == 0 {
			files = append(files, "-")
		}

		table.Append([]string{
			plan.Group.Name,
			strings.Join(plan.Group.Patterns, " "),
			fmt.Sprintf("%d", len(plan.Group.Words)),
			strings.Join(files, "\n"),
		})

		total += len(plan.Files)
	}

	table.SetFooter([]string{fmt.Sprintf("Groups %d", len(plans)), "", "", fmt.Sprintf("Files %d", total)})
	table.Render()

	return tableBuffer.String()
}

// DisplayConfiguration prints cfg as YAML, keeping group order.
func (s *SimpleUI) DisplayConfiguration(ctx context.Context, cfg m.Configuration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := marshalConfiguration(cfg)
	if err != nil {
		return err
	}

	if cfg.Source != "" {
		s.printf("# %s\n", cfg.Source)
	}

	s.printf("%s", data)

	return nil
}

func marshalConfiguration(cfg m.Configuration) ([]byte, error) {
	badWords := &yaml.Node{Kind: yaml.MappingNode}
	patterns := &yaml.Node{Kind: yaml.MappingNode}

	for _, g := range cfg.Groups {
		badWords.Content = append(badWords.Content, scalarNode(g.Name), sequenceNode(g.Words))
		patterns.Content = append(patterns.Content, scalarNode(g.Name), sequenceNode(g.Patterns))
	}

	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			scalarNode("bad_words"), badWords,
			scalarNode("patterns"), patterns,
		},
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode configuration: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode configuration: %w", err)
	}

	return buf.Bytes(), nil
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func sequenceNode(values []string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.SequenceNode}
	for _, v := range values {
		node.Content = append(node.Content, scalarNode(v))
	}

	return node
}

// DisplayCreated reports a file written by init or install.
func (s *SimpleUI) DisplayCreated(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("created %s\n", path)
}

// style returns a lipgloss style bound to a renderer for w.
func (s *SimpleUI) style(w io.Writer) lipgloss.Style {
	r := lipgloss.NewRenderer(w)

	switch s.color {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case ColorAuto:
	}

	return r.NewStyle()
}

func (s *SimpleUI) println(w io.Writer, line string) {
	_, _ = fmt.Fprintln(w, line)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
