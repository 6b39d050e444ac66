package prefsync

import (
	"context"

	"github.com/dmitrijs2005/learnhub/internal/preference"
)

// Binding is the narrow surface a settings screen talks to.
type Binding struct {
	c *Controller
}

func NewBinding(c *Controller) *Binding {
	return &Binding{c: c}
}

func (b *Binding) CurrentDraftValue() preference.Preference {
	return b.c.State().Draft
}

// SetDraft parses raw user input before handing it to the controller.
func (b *Binding) SetDraft(v string) error {
	p, err := preference.Parse(v)
	if err != nil {
		return err
	}
	return b.c.SetDraft(p)
}

func (b *Binding) Toggle() preference.Preference {
	return b.c.Toggle()
}

func (b *Binding) Save(ctx context.Context) error {
	return b.c.Save(ctx)
}

func (b *Binding) Revert() {
	b.c.Revert()
}

func (b *Binding) IsDirty() bool {
	return b.c.State().IsDirty
}
