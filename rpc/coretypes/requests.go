package coretypes

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/nimiq-community/go-nimiq-rpc/types"
)

// LogLevel accepted by the node's log method.
type LogLevel string

const (
	LogLevelTrace   LogLevel = "trace"
	LogLevelVerbose LogLevel = "verbose"
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarn    LogLevel = "warn"
	LogLevelError   LogLevel = "error"
	LogLevelAssert  LogLevel = "assert"
)

// LogTagAll applies a log level to every tag.
const LogTagAll = "*"

// Valid reports whether l is one of the levels the node understands.
func (l LogLevel) Valid() bool {
	switch l {
	case LogLevelTrace, LogLevelVerbose, LogLevelDebug, LogLevelInfo,
		LogLevelWarn, LogLevelError, LogLevelAssert:
		return true
	}
	return false
}

// PeerStateCommand changes the state of a peer through peerState.
type PeerStateCommand string

const (
	PeerConnect    PeerStateCommand = "connect"
	PeerDisconnect PeerStateCommand = "disconnect"
	PeerBan        PeerStateCommand = "ban"
	PeerUnban      PeerStateCommand = "unban"
	PeerFail       PeerStateCommand = "fail"
)

// Valid reports whether c is a known peer command.
func (c PeerStateCommand) Valid() bool {
	switch c {
	case PeerConnect, PeerDisconnect, PeerBan, PeerUnban, PeerFail:
		return true
	}
	return false
}

// OutgoingTransaction is the parameter of sendTransaction and
// createRawTransaction. From and To take user-friendly or hex addresses.
type OutgoingTransaction struct {
	From     string       `json:"from" validate:"required,nimiq_address"`
	FromType *AccountType `json:"fromType,omitempty" validate:"omitempty,max=2"`
	To       string       `json:"to" validate:"required,nimiq_address"`
	ToType   *AccountType `json:"toType,omitempty" validate:"omitempty,max=2"`
	Value    types.Luna   `json:"value" validate:"gt=0"`
	Fee      types.Luna   `json:"fee"`
	Data     string       `json:"data,omitempty" validate:"omitempty,hexadecimal"`
}

// ValidateBasic performs stateless checks on the transaction before it is
// handed to the node.
func (tx OutgoingTransaction) ValidateBasic() error {
	if err := getValidator().Struct(tx); err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}
	return nil
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		if err := validate.RegisterValidation("nimiq_address", func(fl validator.FieldLevel) bool {
			_, err := types.ParseAddress(fl.Field().String())
			return err == nil
		}); err != nil {
			panic(err)
		}
	})
	return validate
}
