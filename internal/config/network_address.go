package config

import (
	"fmt"
	"net"
	"strconv"
)

// NetworkAddress адрес host:port, на котором слушает консоль
type NetworkAddress struct {
	Host string
	Port int
}

func (a NetworkAddress) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetworkAddress) Set(value string) error {
	host, rawPort, err := net.SplitHostPort(value)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAddress, value)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("%w: invalid port %q", ErrInvalidAddress, rawPort)
	}

	a.Host = host
	a.Port = port

	return nil
}

func (a *NetworkAddress) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}

// Type имя типа для справки флагов
func (a *NetworkAddress) Type() string {
	return "host:port"
}
