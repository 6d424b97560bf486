// Package console reads player input lines, with an optional bounded wait.
package console

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"
)

// line is one read result.
type line struct {
	text string
	err  error
}

// Reader delivers lines from an input stream. A single goroutine owns the
// underlying scanner so that a timed read which gives up leaves the pending
// line for the next read instead of losing it.
type Reader struct {
	lines chan line
	err   error
}

// NewReader starts reading lines from r.
//
// Postcondition: the reader goroutine exits once r returns EOF or an error.
func NewReader(r io.Reader) *Reader {
	rd := &Reader{lines: make(chan line)}
	go rd.pump(r)
	return rd
}

func (rd *Reader) pump(r io.Reader) {
	defer close(rd.lines)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rd.lines <- line{text: strings.TrimRight(sc.Text(), "\r")}
	}
	err := sc.Err()
	if err == nil {
		err = io.EOF
	}
	rd.lines <- line{err: err}
}

// ReadLine blocks until a line is available or ctx is done.
//
// Postcondition: Returns io.EOF once the input is exhausted.
func (rd *Reader) ReadLine(ctx context.Context) (string, error) {
	if rd.err != nil {
		return "", rd.err
	}
	select {
	case l, ok := <-rd.lines:
		return rd.take(l, ok)
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// ReadLineTimeout waits at most d for a line. A timeout is reported as
// ok == false with a nil error.
func (rd *Reader) ReadLineTimeout(ctx context.Context, d time.Duration) (text string, ok bool, err error) {
	if rd.err != nil {
		return "", false, rd.err
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case l, open := <-rd.lines:
		text, err = rd.take(l, open)
		return text, err == nil, err
	case <-timer.C:
		return "", false, nil
	case <-ctx.Done():
		return "", false, ctx.Err()
	}
}

func (rd *Reader) take(l line, open bool) (string, error) {
	if !open {
		l.err = io.EOF
	}
	if l.err != nil {
		rd.err = l.err
		return "", l.err
	}
	return l.text, nil
}
