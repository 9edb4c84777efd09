package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nimiq-community/go-nimiq-rpc/rpc/jsonrpc/types"
)

var nullResult = []byte("null")

func unmarshalResponseBytes(
	responseBytes []byte,
	expectedID types.JSONRPCIntID,
	result interface{},
) (interface{}, error) {

	response := &types.RPCResponse{}
	if err := json.Unmarshal(responseBytes, response); err != nil {
		return nil, fmt.Errorf("error unmarshaling: %w", err)
	}

	if response.Error != nil {
		return nil, response.Error
	}

	if err := validateAndVerifyID(response, expectedID); err != nil {
		return nil, fmt.Errorf("wrong ID: %w", err)
	}

	if err := unmarshalResult(response.Result, result); err != nil {
		return nil, fmt.Errorf("error unmarshaling result: %w", err)
	}

	return result, nil
}

func unmarshalResponseBytesArray(
	responseBytes []byte,
	expectedIDs []types.JSONRPCIntID,
	results []interface{},
) ([]interface{}, error) {

	var responses []types.RPCResponse

	if err := json.Unmarshal(responseBytes, &responses); err != nil {
		return nil, fmt.Errorf("error unmarshaling: %w", err)
	}

	if len(results) != len(responses) {
		return nil, fmt.Errorf(
			"expected %d result objects into which to inject responses, but got %d",
			len(responses),
			len(results),
		)
	}

	// Intersect IDs from responses with expectedIDs.
	ids := make([]types.JSONRPCIntID, len(responses))
	var ok bool
	for i, resp := range responses {
		ids[i], ok = resp.ID.(types.JSONRPCIntID)
		if !ok {
			return nil, fmt.Errorf("expected JSONRPCIntID, got %T", resp.ID)
		}
	}
	if err := validateResponseIDs(ids, expectedIDs); err != nil {
		return nil, fmt.Errorf("wrong IDs: %w", err)
	}

	// Responses may arrive in any order. Walk them in request order so that
	// the error reported is the one of the earliest failing request.
	byID := make(map[types.JSONRPCIntID]*types.RPCResponse, len(responses))
	for i := range responses {
		byID[ids[i]] = &responses[i]
	}

	for slot, id := range expectedIDs {
		if byID[id].Error != nil {
			return nil, fmt.Errorf("batch item #%d: %w", slot, byID[id].Error)
		}
	}
	for slot, id := range expectedIDs {
		if err := unmarshalResult(byID[id].Result, results[slot]); err != nil {
			return nil, fmt.Errorf("error unmarshaling #%d result: %w", slot, err)
		}
	}

	return results, nil
}

// unmarshalResult decodes raw into result. A nil result or a null/absent raw
// value leaves result untouched.
func unmarshalResult(raw json.RawMessage, result interface{}) error {
	if result == nil || len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), nullResult) {
		return nil
	}
	return json.Unmarshal(raw, result)
}

func validateResponseIDs(ids, expectedIDs []types.JSONRPCIntID) error {
	m := make(map[types.JSONRPCIntID]bool, len(expectedIDs))
	for _, expectedID := range expectedIDs {
		m[expectedID] = true
	}

	for i, id := range ids {
		if m[id] {
			delete(m, id)
		} else {
			return fmt.Errorf("unsolicited ID #%d: %v", i, id)
		}
	}

	return nil
}

// validateAndVerifyID checks that a single response answers the request with
// expectedID.
func validateAndVerifyID(res *types.RPCResponse, expectedID types.JSONRPCIntID) error {
	if err := validateResponseID(res.ID); err != nil {
		return err
	}
	if expectedID != res.ID.(types.JSONRPCIntID) { // validateResponseID ensured res.ID has the right type
		return fmt.Errorf("response ID (%d) does not match request ID (%d)", res.ID, expectedID)
	}
	return nil
}

func validateResponseID(id interface{}) error {
	if id == nil {
		return errors.New("no ID")
	}
	_, ok := id.(types.JSONRPCIntID)
	if !ok {
		return fmt.Errorf("expected JSONRPCIntID, but got: %T", id)
	}
	return nil
}
