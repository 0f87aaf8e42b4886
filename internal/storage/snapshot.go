package storage

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

// SchemaVersion is written into every snapshot envelope. Snapshots
// carrying a different version are ignored on load so a future layout
// change can migrate instead of failing to deserialize.
const SchemaVersion = 1

type envelope struct {
	SchemaVersion int             `json:"schemaVersion"`
	State         json.RawMessage `json:"state"`
}

func SaveSnapshot(ctx context.Context, store Store, key string, state interface{}) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return errors.Wrapf(err, "marshal snapshot state for key %q", key)
	}

	data, err := json.Marshal(envelope{SchemaVersion: SchemaVersion, State: raw})
	if err != nil {
		return errors.Wrapf(err, "marshal snapshot envelope for key %q", key)
	}

	return errors.Wrapf(store.Set(ctx, key, data), "write snapshot for key %q", key)
}

// LoadSnapshot reads the snapshot stored under key into out. Returns
// false when no usable snapshot exists - missing key, unknown schema
// version - so the caller can start from its default state.
func LoadSnapshot(ctx context.Context, store Store, key string, out interface{}) (bool, error) {
	data, found, err := store.Get(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "read snapshot for key %q", key)
	}

	if !found {
		return false, nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return false, errors.Wrapf(err, "unmarshal snapshot envelope for key %q", key)
	}

	if env.SchemaVersion != SchemaVersion {
		return false, nil
	}

	if err := json.Unmarshal(env.State, out); err != nil {
		return false, errors.Wrapf(err, "unmarshal snapshot state for key %q", key)
	}

	return true, nil
}
