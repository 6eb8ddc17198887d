package io

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/tidwall/gjson"

	verrors "github.com/psyberchi/jvocab/pkg/errors"
	"github.com/psyberchi/jvocab/pkg/vocab"
)

// legacyLabel is the on-disk spelling older files used for a category label.
const legacyLabel = "_"

// requiredFields lists the entry keys that must be present and non-null.
var requiredFields = [...]string{"en", "ro", "kn", "kj"}

// Unmarshal decodes a vocabulary document into a new store.
//
// The document must be a JSON object; otherwise the error carries
// [verrors.ErrCodeParse]. Categories are added in document order. A category
// key that repeats is not created twice, and its entries are merged into the
// existing category. Elements that cannot be used are skipped and reported
// as warnings; they never fail the call.
func Unmarshal(data []byte, opts ...Option) (*vocab.Store, error) {
	o := buildOptions(opts)

	if !gjson.ValidBytes(data) {
		return nil, verrors.New(verrors.ErrCodeParse, "document is not valid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, verrors.New(verrors.ErrCodeParse, "document must be a JSON object, got %s", describe(doc))
	}

	s := vocab.NewStore()
	doc.ForEach(func(key, value gjson.Result) bool {
		readCategory(s, key.String(), value, &o)
		return true
	})

	o.Logger.Debug("decoded vocabulary", "categories", s.CategoryCount(), "entries", s.VocabCount())
	return s, nil
}

// ReadJSON reads all of r and decodes it with [Unmarshal].
// ReadJSON does not close r.
func ReadJSON(r io.Reader, opts ...Option) (*vocab.Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, verrors.Wrap(verrors.ErrCodeRead, err, "read vocabulary")
	}
	return Unmarshal(data, opts...)
}

// LoadFile reads the vocabulary file at path.
//
// A path that does not exist or may not be read yields
// [verrors.ErrCodeFileNotFound]; other read failures yield
// [verrors.ErrCodeRead]; content that is not a JSON object yields
// [verrors.ErrCodeParse].
func LoadFile(path string, opts ...Option) (*vocab.Store, error) {
	if err := verrors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		// The path is already in the message; keep only the reason.
		var pe *fs.PathError
		if errors.As(err, &pe) {
			err = pe.Err
		}
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, verrors.Wrap(verrors.ErrCodeFileNotFound, err, "%s", path)
		}
		return nil, verrors.Wrap(verrors.ErrCodeRead, err, "%s", path)
	}
	s, err := Unmarshal(data, opts...)
	if err != nil {
		return nil, verrors.New(verrors.GetCode(err), "%s: %s", path, verrors.UserMessage(err))
	}
	return s, nil
}

func readCategory(s *vocab.Store, cat string, value gjson.Result, o *Options) {
	if s.AddCategory(cat) {
		o.Logger.Debug("adding category", "category", cat)
	} else {
		o.warn(Warning{Category: cat, Index: -1, Kind: WarnDuplicateCategory,
			Detail: "category appears more than once, merging entries"})
	}

	if !value.IsArray() {
		o.warn(Warning{Category: cat, Index: -1, Kind: WarnNotArray,
			Detail: fmt.Sprintf("expected an array of entries, got %s", describe(value))})
		return
	}

	for i, elem := range value.Array() {
		entry, w, ok := readEntry(cat, elem)
		if !ok {
			w.Category, w.Index = cat, i
			o.warn(w)
			continue
		}
		if !s.AddVocabItem(cat, entry) {
			kind, detail := WarnDuplicateEntry, fmt.Sprintf("duplicate entry %q", entry.English)
			if err := entry.Validate(); err != nil {
				kind, detail = WarnInvalidEntry, err.Error()
			}
			o.warn(Warning{Category: cat, Index: i, Kind: kind, Detail: detail})
			continue
		}
		o.Logger.Debug("added entry", "category", cat, "entry", entry.String())
	}
}

// readEntry converts one array element. On failure the returned warning has
// its Kind and Detail set.
func readEntry(cat string, elem gjson.Result) (vocab.Entry, Warning, bool) {
	if !elem.IsObject() {
		return vocab.Entry{}, Warning{Kind: WarnNotObject,
			Detail: fmt.Sprintf("expected an entry object, got %s", describe(elem))}, false
	}

	values := entryValues(elem)
	var fields [len(requiredFields)]string
	for i, name := range requiredFields {
		v := values[name]
		if !v.Exists() || v.Type == gjson.Null {
			return vocab.Entry{}, Warning{Kind: WarnMissingField,
				Detail: fmt.Sprintf("missing field %q", name)}, false
		}
		text, ok := scalarText(v)
		if !ok {
			return vocab.Entry{}, Warning{Kind: WarnBadField,
				Detail: fmt.Sprintf("field %q must be a string, got %s", name, describe(v))}, false
		}
		fields[i] = text
	}

	lesson, err := readLesson(values["ln"])
	if err != nil {
		return vocab.Entry{}, Warning{Kind: WarnBadLesson, Detail: err.Error()}, false
	}

	entry := vocab.NewEntry(fields[0], fields[1], fields[2], fields[3], lesson)
	if entry.English == legacyLabel {
		entry.English = vocab.CategoryLabel(cat).English
	}
	return entry, Warning{}, true
}

// entryValues collects the members of an entry object. When a key repeats
// the last value wins; gjson's Get would return the first.
func entryValues(elem gjson.Result) map[string]gjson.Result {
	values := make(map[string]gjson.Result, len(requiredFields)+1)
	elem.ForEach(func(key, value gjson.Result) bool {
		values[key.String()] = value
		return true
	})
	return values
}

// scalarText renders a string, number, or boolean as text. Non-string
// scalars keep their JSON spelling.
func scalarText(v gjson.Result) (string, bool) {
	switch v.Type {
	case gjson.String:
		return v.String(), true
	case gjson.Number, gjson.True, gjson.False:
		return v.Raw, true
	default:
		return "", false
	}
}

// readLesson parses the optional "ln" value. Absent and null mean lesson 0.
// Integers and strings holding a decimal integer are accepted.
func readLesson(v gjson.Result) (int, error) {
	if !v.Exists() || v.Type == gjson.Null {
		return 0, nil
	}

	var text string
	switch v.Type {
	case gjson.Number:
		text = v.Raw
	case gjson.String:
		text = v.String()
	default:
		return 0, fmt.Errorf("lesson must be an integer, got %s", describe(v))
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("lesson must be an integer, got %q", text)
	}
	if n < 0 {
		return 0, fmt.Errorf("lesson must not be negative, got %d", n)
	}
	return n, nil
}

// describe names the JSON type of v for messages.
func describe(v gjson.Result) string {
	switch {
	case v.IsObject():
		return "object"
	case v.IsArray():
		return "array"
	}
	switch v.Type {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "boolean"
	case gjson.Null:
		return "null"
	}
	return "nothing"
}
