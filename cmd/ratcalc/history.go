package main

import (
	"io"
	"os"
	"path/filepath"
)

func historyFile(op func(string) (*os.File, error)) (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return op(filepath.Join(home, ".ratcalc_history"))
}

func loadHistory(read func(r io.Reader) (int, error)) error {
	f, err := historyFile(os.Open)
	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func saveHistory(write func(w io.Writer) (int, error)) error {
	f, err := historyFile(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
