package keyring

import (
	"errors"
	"fmt"

	"bumpr/internal/ports"

	"github.com/zalando/go-keyring"
)

// ServiceName is the OS keyring service every bumpr secret is stored under.
const ServiceName = "bumpr"

var _ ports.Keyring = ZalandoKeyring{}

type ZalandoKeyring struct{}

func ProvideZalandoKeyring() ZalandoKeyring {
	return ZalandoKeyring{}
}

func (z ZalandoKeyring) GetKey(keyName string) (string, error) {
	value, err := keyring.Get(ServiceName, keyName)
	if err != nil {
		return "", fmt.Errorf("failed to read %s from keyring: %w", keyName, err)
	}
	return value, nil
}

func (z ZalandoKeyring) SetKey(keyName string, keyValue string) error {
	if err := keyring.Set(ServiceName, keyName, keyValue); err != nil {
		return fmt.Errorf("failed to store %s in keyring: %w", keyName, err)
	}
	return nil
}

func (z ZalandoKeyring) HasKey(keyName string) (bool, error) {
	_, err := keyring.Get(ServiceName, keyName)
	if errors.Is(err, keyring.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}
