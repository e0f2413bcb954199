package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"postboard/internal/model"
)

var ErrEmptyUpdate = errors.New("update payload sets no field")

// Payloads are the fixed bodies sent by the create and update buttons.
type Payloads struct {
	Create model.PostDraft `yaml:"create"`
	Update model.PostPatch `yaml:"update"`
}

// DefaultPayloads returns the built-in demo bodies.
func DefaultPayloads() Payloads {
	title := "Updated Title!"
	return Payloads{
		Create: model.PostDraft{
			UserID: 1,
			Title:  "New Post Title",
			Body:   "This is a new post body.",
		},
		Update: model.PostPatch{Title: &title},
	}
}

// LoadPayloads reads demo bodies from a YAML file. An empty path yields DefaultPayloads.
// Sections missing from the file keep their defaults.
//
//	create:
//	  user_id: 1
//	  title: New Post Title
//	  body: This is a new post body.
//	update:
//	  title: Updated Title!
func LoadPayloads(path string) (Payloads, error) {
	p := DefaultPayloads()
	if path == "" {
		return p, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}

	var file struct {
		Create *model.PostDraft `yaml:"create"`
		Update *model.PostPatch `yaml:"update"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return p, fmt.Errorf("%s: %w", path, err)
	}
	if file.Create != nil {
		p.Create = *file.Create
	}
	if file.Update != nil {
		if file.Update.UserID == nil && file.Update.Title == nil && file.Update.Body == nil {
			return p, fmt.Errorf("%s: %w", path, ErrEmptyUpdate)
		}
		p.Update = *file.Update
	}
	return p, nil
}
