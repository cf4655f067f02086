package models

import "encoding/json"

type FormatType string

const (
	FormatText  FormatType = "text"
	FormatAudio FormatType = "audio"
)

func (f FormatType) Valid() bool {
	return f == FormatText || f == FormatAudio
}

// Story is the canonical story shape: languages carry a list of contents
// tagged with a format ID, plus the server-derived formatted_contents map.
type Story struct {
	ID        ID         `json:"id"`
	Title     string     `json:"title"`
	Languages []Language `json:"languages"`
	Formats   []Format   `json:"formats"`
}

type Language struct {
	ID                ID                `json:"id,omitempty"`
	Code              string            `json:"code"`
	Contents          []Content         `json:"contents"`
	FormattedContents map[string]string `json:"formatted_contents,omitempty"`
}

type Content struct {
	ID         ID     `json:"id"`
	Content    string `json:"content"`
	FormatID   ID     `json:"format_id"`
	LanguageID ID     `json:"language_id,omitempty"`
}

type Format struct {
	ID   ID         `json:"id,omitempty"`
	Type FormatType `json:"type"`
}

// UnmarshalJSON accepts the older {code, content: {type: text}} shape and
// folds it into FormattedContents keyed by format type.
func (l *Language) UnmarshalJSON(b []byte) error {
	type alias Language
	aux := struct {
		*alias
		Legacy map[string]string `json:"content"`
	}{alias: (*alias)(l)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if len(aux.Legacy) == 0 {
		return nil
	}
	if l.FormattedContents == nil {
		l.FormattedContents = make(map[string]string, len(aux.Legacy))
	}
	for k, v := range aux.Legacy {
		if _, ok := l.FormattedContents[k]; !ok {
			l.FormattedContents[k] = v
		}
	}
	return nil
}

// ContentFor finds the content of this language in format f, matching by
// format ID first and by format type second.
func (l Language) ContentFor(f Format) (string, bool) {
	if f.ID != "" {
		for _, c := range l.Contents {
			if c.FormatID == f.ID {
				return c.Content, true
			}
		}
		if v, ok := l.FormattedContents[string(f.ID)]; ok {
			return v, true
		}
	}
	v, ok := l.FormattedContents[string(f.Type)]
	return v, ok
}

func (s Story) EntityID() ID { return s.ID }

func (s Story) Clone() Story {
	s.Formats = cloneSlice(s.Formats)
	if s.Languages != nil {
		langs := make([]Language, len(s.Languages))
		for i, l := range s.Languages {
			l.Contents = cloneSlice(l.Contents)
			l.FormattedContents = cloneMap(l.FormattedContents)
			langs[i] = l
		}
		s.Languages = langs
	}
	return s
}

// Language returns the language with the given code.
func (s *Story) Language(code string) (Language, bool) {
	for _, l := range s.Languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

type CreateStory struct {
	Title    string     `json:"title"`
	Content  string     `json:"content"`
	Language string     `json:"language"`
	Format   FormatType `json:"format"`
}

type UpdateStory struct {
	ID      ID      `json:"id"`
	Title   string  `json:"title"`
	Content *string `json:"content,omitempty"`
}

// Upload is a named binary part of a multipart request.
type Upload struct {
	Name string
	Data []byte
}

// LanguageUpload is sent as multipart form data. Audio, when set, travels as
// a file part next to the text fields.
type LanguageUpload struct {
	Language string
	Format   FormatType
	Content  string
	Audio    *Upload
}

// FormatUpload carries either text content or a file, never both.
type FormatUpload struct {
	Format FormatType
	Text   string
	File   *Upload
}
