package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

const usernameColumn = "Username"

// LoadUserList reads the Username column of a CSV file. A missing file is not an error and
// yields a nil list; a file without a Username column yields an empty list.
func LoadUserList(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err == io.EOF {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user list header: %w", err)
	}

	col := -1
	for i, name := range header {
		if strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) == usernameColumn {
			col = i
			break
		}
	}
	users := []string{}
	if col < 0 {
		return users, nil
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read user list: %w", err)
		}
		if col >= len(record) {
			continue
		}
		if u := strings.TrimSpace(record[col]); u != "" {
			users = append(users, u)
		}
	}
	return users, nil
}
