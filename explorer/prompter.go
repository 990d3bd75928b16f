package main

import (
	"bufio"
	"fmt"
	"io"
)

// Prompter asks questions to the operator and reads one line per answer
type Prompter struct {
	scanner *bufio.Scanner
	output  io.Writer
}

func NewPrompter(input io.Reader, output io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(input),
		output:  output,
	}
}

// Ask writes the question and returns the next line of input. When the input is closed io.EOF is returned
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.output, question); err != nil {
		return "", err
	}

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

// AskUntilValid repeats the question until parse accepts the answer. Each rejected answer is passed to onInvalid.
// There is no limit of retries: the loop only ends with a valid answer or with an input error
func (p *Prompter) AskUntilValid(question string, parse func(string) (string, error), onInvalid func(input string, err error)) (string, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}

		value, err := parse(answer)
		if err == nil {
			return value, nil
		}
		onInvalid(answer, err)
	}
}
