package config

import (
	"fmt"
	"strings"
)

// URLPrefix базовый адрес удалённого API
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

func (p *URLPrefix) Set(value string) error {
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return fmt.Errorf("%w: %s", ErrInvalidURLPrefix, value)
	}

	*p = URLPrefix(strings.TrimSuffix(value, "/"))

	return nil
}

func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}

// Type имя типа для справки флагов
func (p *URLPrefix) Type() string {
	return "url"
}
