package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// createParticipant writes a new Participant with no holdings under id.
// Fails if id already holds a record.
func createParticipant(ws worldState, id, firstName, lastName string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("id is required")
	}

	exists, err := keyExists(ws, id)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: participant %s", errDuplicateKey, id)
	}

	p := Participant{
		DocType:   docTypeParticipant,
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Assets:    []string{},
	}
	return putRecord(ws, id, p)
}

// createAsset writes a new Asset under id, owned by owner. The owner must
// already exist. The owner record itself is not touched: holdings change
// only through the seed and through transfers.
func createAsset(ws worldState, id string, value int64, owner string) error {
	id = strings.TrimSpace(id)
	owner = strings.TrimSpace(owner)
	if id == "" {
		return errors.New("id is required")
	}
	if owner == "" {
		return errors.New("owner is required")
	}

	exists, err := keyExists(ws, id)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: asset %s", errDuplicateKey, id)
	}

	ownerExists, err := keyExists(ws, owner)
	if err != nil {
		return err
	}
	if !ownerExists {
		return fmt.Errorf("%w: %s", errUnknownOwner, owner)
	}

	a := Asset{
		DocType: docTypeAsset,
		ID:      id,
		Value:   value,
		Owner:   owner,
	}
	return putRecord(ws, id, a)
}

// getRecord returns the raw bytes stored under key, kind agnostic.
func getRecord(ws worldState, key string) ([]byte, error) {
	b, err := ws.Get(key)
	if err != nil {
		return nil, fmt.Errorf("get state: %w", err)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: %s", errNotFound, key)
	}
	return b, nil
}

// getParticipant loads and decodes the Participant stored under id.
func getParticipant(ws worldState, id string) (*Participant, error) {
	b, err := getRecord(ws, id)
	if err != nil {
		return nil, err
	}
	var p Participant
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("unmarshal participant %s: %w", id, err)
	}
	if p.DocType != docTypeParticipant {
		return nil, fmt.Errorf("%w: %s holds a %q record", errUnknownParticipant, id, p.DocType)
	}
	return &p, nil
}

// getAsset loads and decodes the Asset stored under id.
func getAsset(ws worldState, id string) (*Asset, error) {
	b, err := getRecord(ws, id)
	if err != nil {
		return nil, err
	}
	var a Asset
	if err := json.Unmarshal(b, &a); err != nil {
		return nil, fmt.Errorf("unmarshal asset %s: %w", id, err)
	}
	if a.DocType != docTypeAsset {
		return nil, fmt.Errorf("%w: %s holds a %q record", errUnknownAsset, id, a.DocType)
	}
	return &a, nil
}

// putRecord serializes v and writes it under key, overwriting any existing
// value.
func putRecord(ws worldState, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := ws.Put(key, b); err != nil {
		return fmt.Errorf("put state: %w", err)
	}
	return nil
}
