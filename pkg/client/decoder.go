package client

import (
	"encoding/json"
	"fmt"

	"github.com/bootstate-dev/bootstate/pkg/types"
)

// DecodeStatus parses raw status command output into a Status. Unknown
// fields are ignored so newer producers keep working; missing required
// fields, type mismatches, and malformed JSON all fail with a DecodeError.
// Decoding is pure: no I/O, and never a partially populated model.
func DecodeStatus(data []byte) (*types.Status, error) {
	return decodeStatus(DefaultCommand, data)
}

func decodeStatus(command string, data []byte) (*types.Status, error) {
	var st types.Status
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, &DecodeError{Command: command, Err: err}
	}
	for i, d := range st.Deployments {
		if err := validateDeployment(i, &d); err != nil {
			return nil, &DecodeError{Command: command, Err: err}
		}
	}
	return &st, nil
}

func validateDeployment(i int, d *types.Deployment) error {
	switch {
	case d.Osname == "":
		return fmt.Errorf("deployment %d: missing required field \"osname\"", i)
	case d.Checksum == "":
		return fmt.Errorf("deployment %d: missing required field \"checksum\"", i)
	case d.Origin == "":
		return fmt.Errorf("deployment %d: missing required field \"origin\"", i)
	}
	return nil
}
