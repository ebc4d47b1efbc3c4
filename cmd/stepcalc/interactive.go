package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// interactive asks for a mode and an input on r and writes prompts and
// results to w. It returns the exit code.
func interactive(r *bufio.Reader, w *bufio.Writer, opts options) int {
	choice, err := prompt(r, w, "Enter '1' for polynomial evaluation or '2' for arithmetic expressions: ")
	if err != nil {
		return readerr(w, err)
	}
	switch choice {
	case "1":
		src, err := prompt(r, w, "Enter polynomial (e.g. 3x^2 + 2x + 1): ")
		if err != nil {
			return readerr(w, err)
		}
		xs, err := prompt(r, w, "Enter value of x: ")
		if err != nil {
			return readerr(w, err)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			fmt.Fprintf(w, "Invalid value of x: %q\n", xs)
			return 1
		}
		if err := poly(w, src, x, opts); err != nil {
			report(w, err)
			return 1
		}
	case "2":
		src, err := prompt(r, w, "Enter an arithmetic expression: ")
		if err != nil {
			return readerr(w, err)
		}
		if err := arith(w, src, opts); err != nil {
			report(w, err)
			return 1
		}
	default:
		fmt.Fprintln(w, "Invalid choice")
		return 1
	}
	return 0
}

// prompt writes a prompt and reads one trimmed line.
func prompt(r *bufio.Reader, w *bufio.Writer, msg string) (string, error) {
	w.WriteString(msg)
	if err := w.Flush(); err != nil {
		return "", err
	}
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func readerr(w io.Writer, err error) int {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(w)
		return 1
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	return 1
}
