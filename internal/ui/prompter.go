package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

type (
	// Question describes one interactive prompt. Validate, when set, is
	// applied to the answer; a non-nil error re-prompts with the message.
	Question struct {
		Text     string
		Default  string
		Choices  []string
		Validate func(answer string) error
	}

	// Prompter collects answers from the user.
	Prompter interface {
		Ask(q Question) (string, error)
	}
)

// StdinPrompter reads answers line by line from an input stream, stdin in
// production.
type StdinPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewStdinPrompter() *StdinPrompter {
	return &StdinPrompter{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

func NewPrompterFrom(in io.Reader, out io.Writer) *StdinPrompter {
	return &StdinPrompter{in: bufio.NewReader(in), out: out}
}

// Ask prompts until the answer passes validation. Choice questions are
// rendered as a numbered list and accept either the number or the value.
func (p *StdinPrompter) Ask(q Question) (string, error) {
	for {
		if len(q.Choices) > 0 {
			fmt.Fprintf(p.out, "%s\n", q.Text)
			for i, choice := range q.Choices {
				fmt.Fprintf(p.out, "  %d) %s\n", i+1, choice)
			}
			fmt.Fprintf(p.out, "> ")
		} else if q.Default != "" {
			fmt.Fprintf(p.out, "%s (%s): ", q.Text, q.Default)
		} else {
			fmt.Fprintf(p.out, "%s: ", q.Text)
		}

		line, err := p.in.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		answer := strings.TrimSpace(line)

		if answer == "" {
			answer = q.Default
		}

		if len(q.Choices) > 0 {
			if resolved, ok := resolveChoice(answer, q.Choices); ok {
				answer = resolved
			} else {
				fmt.Fprintf(p.out, "please choose one of the listed options\n")
				continue
			}
		}

		if q.Validate != nil {
			if err := q.Validate(answer); err != nil {
				fmt.Fprintf(p.out, "%s\n", err.Error())
				continue
			}
		}

		return answer, nil
	}
}

func resolveChoice(answer string, choices []string) (string, bool) {
	if idx, err := strconv.Atoi(answer); err == nil {
		if idx >= 1 && idx <= len(choices) {
			return choices[idx-1], true
		}
		return "", false
	}
	for _, choice := range choices {
		if strings.EqualFold(answer, choice) {
			return choice, true
		}
	}
	return "", false
}
