// Command varray is an interactive shell over a paged virtual array. It
// exposes the four array operations:
//
//	create int <path> <size>
//	create text <path> <size> <fixedLen>
//	write <index> <value>
//	read <index>
//	exit
//
// Element-kind and argument validation lives here; the core library is
// never invoked with a malformed creation request. Operation failures are
// reported and the session continues.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	varray "github.com/Alexanderio1/go-virtual-array"
)

// session holds whichever array is currently open. The two element kinds
// are a closed set, so a tag plus two typed pointers beats an interface.
type session struct {
	ints *varray.Array[int32]
	text *varray.Array[string]
}

func (s *session) open() bool { return s.ints != nil || s.text != nil }

func (s *session) close() error {
	switch {
	case s.ints != nil:
		defer func() { s.ints = nil }()
		return s.ints.Close()
	case s.text != nil:
		defer func() { s.text = nil }()
		return s.text.Close()
	}
	return nil
}

func (s *session) create(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: create int|text <path> <size> [fixedLen]")
	}
	kind, path := args[0], args[1]
	size, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil || size <= 0 {
		return fmt.Errorf("bad size %q: must be a positive integer", args[2])
	}

	if err := s.close(); err != nil {
		return fmt.Errorf("closing previous array: %w", err)
	}

	switch kind {
	case "int":
		a, err := varray.NewIntArray(path, size, varray.DefaultOptions())
		if err != nil {
			return err
		}
		s.ints = a
	case "text":
		if len(args) < 4 {
			return fmt.Errorf("usage: create text <path> <size> <fixedLen>")
		}
		fixedLen, err := strconv.Atoi(args[3])
		if err != nil || fixedLen <= 0 {
			return fmt.Errorf("bad fixedLen %q: must be a positive integer", args[3])
		}
		a, err := varray.NewFixedTextArray(path, size, fixedLen, varray.DefaultOptions())
		if err != nil {
			return err
		}
		s.text = a
	default:
		return fmt.Errorf("unsupported element kind %q (want int or text)", kind)
	}
	return nil
}

func (s *session) write(args []string) error {
	if !s.open() {
		return fmt.Errorf("no array open, use create first")
	}
	if len(args) < 2 {
		return fmt.Errorf("usage: write <index> <value>")
	}
	index, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("bad index %q", args[0])
	}

	if s.ints != nil {
		v, err := strconv.ParseInt(args[1], 10, 32)
		if err != nil {
			return fmt.Errorf("bad integer value %q", args[1])
		}
		return s.ints.Write(index, int32(v))
	}
	return s.text.Write(index, strings.Join(args[1:], " "))
}

func (s *session) read(args []string) (string, error) {
	if !s.open() {
		return "", fmt.Errorf("no array open, use create first")
	}
	if len(args) < 1 {
		return "", fmt.Errorf("usage: read <index>")
	}
	index, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return "", fmt.Errorf("bad index %q", args[0])
	}

	if s.ints != nil {
		v, err := s.ints.Read(index)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(int64(v), 10), nil
	}
	v, err := s.text.Read(index)
	if err != nil {
		return "", err
	}
	return strconv.Quote(v), nil
}

func main() {
	fmt.Println("varray shell — create int|text <path> <size> [fixedLen], write, read, exit")

	var sess session
	in := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for in.Scan() {
		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			fmt.Print("> ")
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "create":
			if err := sess.create(args); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
			}
		case "write":
			if err := sess.write(args); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
			}
		case "read":
			out, err := sess.read(args)
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
			} else {
				fmt.Println(out)
			}
		case "exit", "quit":
			if err := sess.close(); err != nil {
				fmt.Fprintln(os.Stderr, "error closing array:", err)
				os.Exit(1)
			}
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		}
		fmt.Print("> ")
	}

	// EOF on stdin still closes the array cleanly.
	if err := sess.close(); err != nil {
		fmt.Fprintln(os.Stderr, "error closing array:", err)
		os.Exit(1)
	}
}
