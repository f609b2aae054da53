package export

import (
	"io"

	"github.com/arthur-debert/roster/pkg/codec"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/logging"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Write renders doc to w in the given format.
func Write(w io.Writer, doc codec.Document, format Format) error {
	logger := logging.GetLogger("export")
	logger.Debug().
		Str("format", format.String()).
		Int("students", len(doc.Students)).
		Int("courses", len(doc.Courses)).
		Msg("Exporting document")

	var err error
	switch format {
	case FormatJSON:
		err = writeJSON(w, doc)
	case FormatYAML:
		err = writeYAML(w, doc)
	case FormatTOML:
		err = writeTOML(w, doc)
	case FormatXML:
		err = writeXML(w, doc)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown export format %q", string(format)).
			WithDetail("format", string(format))
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrIOFailure, "failed to write %s export", format).
			WithDetail("format", format.String())
	}
	return nil
}

func writeJSON(w io.Writer, doc codec.Document) error {
	data, err := codec.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writeYAML(w io.Writer, doc codec.Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(normalize(doc)); err != nil {
		return err
	}
	return enc.Close()
}

func writeTOML(w io.Writer, doc codec.Document) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(normalize(doc))
}

// normalize replaces nil collections with empty ones so every format
// renders absent data the same way.
func normalize(doc codec.Document) codec.Document {
	out := codec.Document{
		Students: make(map[string]codec.StudentRecord, len(doc.Students)),
		Courses:  make(map[string]codec.CourseRecord, len(doc.Courses)),
	}
	for id, s := range doc.Students {
		if s.Grades == nil {
			s.Grades = map[string]string{}
		}
		if s.Courses == nil {
			s.Courses = []string{}
		}
		out.Students[id] = s
	}
	for code, c := range doc.Courses {
		if c.Students == nil {
			c.Students = []string{}
		}
		out.Courses[code] = c
	}
	return out
}
