package utils

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// WriteOutput renders v as indented JSON or as YAML. Both use the json struct tags, so
// a value reads the same in either format.
func WriteOutput(w io.Writer, format string, v interface{}) error {
	var (
		out []byte
		err error
	)
	switch format {
	case OutputJSON, "":
		out, err = json.MarshalIndent(v, "", "  ")
		out = append(out, '\n')
	case OutputYAML:
		out, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
