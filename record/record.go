package record

import (
	"bytes"
	"io"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	JSON  Format = "json"
	YAML  Format = "yaml"
	Proto Format = "proto"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case JSON, YAML, Proto:
		return f, nil
	case "":
		return JSON, nil
	default:
		return "", errors.Errorf("unknown record format %q", s)
	}
}

// Record is serialized once and discarded. Fields are declared in key order
// so every format emits "libraries" before "message".
type Record struct {
	Libraries []string `json:"libraries" yaml:"libraries"`
	Message   string   `json:"message" yaml:"message"`
}

func New(message string, libraries ...string) Record {
	return Record{Libraries: libraries, Message: message}
}

func (r Record) Encode(w io.Writer, format Format) error {
	var (
		out []byte
		err error
	)
	switch format {
	case JSON:
		out, err = json.MarshalIndent(r, "", "  ")
		out = append(out, '\n')
	case YAML:
		out, err = r.encodeYAML()
	case Proto:
		out, err = r.encodeProto()
	default:
		return errors.Errorf("unknown record format %q", format)
	}
	if err != nil {
		return errors.Wrapf(err, "encode record as %s", format)
	}
	_, err = w.Write(out)
	return errors.Wrap(err, "write record")
}

func (r Record) encodeYAML() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(r); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r Record) encodeProto() ([]byte, error) {
	s, err := r.Struct()
	if err != nil {
		return nil, err
	}
	return proto.MarshalOptions{Deterministic: true}.Marshal(s)
}

// Struct converts the record into a protobuf Struct.
func (r Record) Struct() (*structpb.Struct, error) {
	libraries := make([]any, 0, len(r.Libraries))
	for _, l := range r.Libraries {
		libraries = append(libraries, l)
	}
	return structpb.NewStruct(map[string]any{
		"libraries": libraries,
		"message":   r.Message,
	})
}
