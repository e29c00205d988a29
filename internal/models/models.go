// package models defines the data model for the hymn archive client
package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// FlexString decodes a JSON value that the archive stores either as a
// string or a bare number (sheet-backed APIs are loose about this).
type FlexString string

// UnmarshalJSON implements [json.Unmarshaler].
func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// Hymn represents one browsable item in the archive collection.
//
// Every field except the identifier is optional; absent fields are
// omitted from derived display strings and skipped during search.
type Hymn struct {
	ID        FlexString `json:"HymnID"`
	TitleKo   string     `json:"Title_ko"`
	TitleEn   string     `json:"Title_en"`
	Number    FlexString `json:"Number"`
	Key       string     `json:"Key"`
	Tags      string     `json:"Tags"`
	Themes    string     `json:"Themes"`
	Keywords  string     `json:"Keywords"`
	ImagePath string     `json:"GithubPath"`
}

// DisplayTitle resolves the title shown in lists and the viewer:
// primary (Korean) title, else the English title, else the raw identifier.
func (h Hymn) DisplayTitle() string {
	if h.TitleKo != "" {
		return h.TitleKo
	}
	if h.TitleEn != "" {
		return h.TitleEn
	}
	return h.ID.String()
}

// ListMeta builds the short meta line for list rows from present fields only.
func (h Hymn) ListMeta() string {
	var bits []string
	if h.Number != "" {
		bits = append(bits, "#"+h.Number.String())
	}
	if h.Key != "" {
		bits = append(bits, "Key: "+h.Key)
	}
	if h.Tags != "" {
		bits = append(bits, "["+h.Tags+"]")
	}
	return strings.Join(bits, " · ")
}

// ViewerMeta builds the full meta line for the viewer from present fields only.
func (h Hymn) ViewerMeta() string {
	var bits []string
	if h.Number != "" {
		bits = append(bits, "#"+h.Number.String())
	}
	if h.Key != "" {
		bits = append(bits, "Key: "+h.Key)
	}
	if h.Tags != "" {
		bits = append(bits, "Tags: "+h.Tags)
	}
	if h.Themes != "" {
		bits = append(bits, "Themes: "+h.Themes)
	}
	return strings.Join(bits, " · ")
}

// SearchFields returns the searchable fields that are present.
// Absent fields are excluded entirely rather than matched as empty strings.
func (h Hymn) SearchFields() []string {
	var fields []string
	for _, f := range []string{
		h.TitleKo,
		h.TitleEn,
		h.Tags,
		h.Themes,
		h.Keywords,
		h.Number.String(),
	} {
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// ImageURL resolves the sheet image source by prefixing base onto the
// stored path. Base is empty when the archive stores full URLs.
func (h Hymn) ImageURL(base string) string {
	if h.ImagePath == "" {
		return ""
	}
	return base + h.ImagePath
}

// Comment represents a user-submitted annotation attached to one hymn.
type Comment struct {
	Name      string `json:"name"`
	Body      string `json:"comment"`
	Timestamp string `json:"timestamp,omitempty"`
}

// DisplayName returns the author name, defaulting to "Anonymous" when blank.
func (c Comment) DisplayName() string {
	if strings.TrimSpace(c.Name) == "" {
		return "Anonymous"
	}
	return c.Name
}

// DisplayTime formats the creation timestamp for display.
// Returns "" when the timestamp is absent; unparseable values are shown raw
// rather than dropped.
func (c Comment) DisplayTime() string {
	if c.Timestamp == "" {
		return ""
	}

	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, c.Timestamp); err == nil {
			return t.Local().Format("Jan 2, 2006 3:04 PM")
		}
	}

	// Epoch millis, another shape sheet backends produce
	if ms, err := strconv.ParseInt(c.Timestamp, 10, 64); err == nil {
		return time.UnixMilli(ms).Local().Format("Jan 2, 2006 3:04 PM")
	}

	return c.Timestamp
}

// Header renders the comment header line: name plus the formatted
// timestamp when one is present.
func (c Comment) Header() string {
	if ts := c.DisplayTime(); ts != "" {
		return c.DisplayName() + " · " + ts
	}
	return c.DisplayName()
}
