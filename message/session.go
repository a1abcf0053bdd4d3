package message

import (
	"github.com/yzcpleo/szse-v5-parser/field"
	"github.com/yzcpleo/szse-v5-parser/wire"
)

// SessionStatus enumerates the Logout.SessionStatus codes (spec section 4.5).
type SessionStatus int32

const (
	SessionStatusActive             SessionStatus = 0
	SessionStatusPasswordChanged     SessionStatus = 1
	SessionStatusPasswordExpiring    SessionStatus = 2
	SessionStatusInvalidNewPassword  SessionStatus = 3
	SessionStatusLogoutComplete      SessionStatus = 4
	SessionStatusBadUserOrPassword   SessionStatus = 5
	SessionStatusAccountLocked       SessionStatus = 6
	SessionStatusTimeNotAllowed      SessionStatus = 7
	SessionStatusPasswordExpired     SessionStatus = 8
	SessionStatusSeqTooSmall         SessionStatus = 9
	SessionStatusNextExpectedTooLarge SessionStatus = 10
	SessionStatusOther               SessionStatus = 101
	SessionStatusInvalidMessage       SessionStatus = 102
)

// Logon (MsgType 1): SenderCompID, TargetCompID, HeartBtInt, Password,
// DefaultApplVerID.
type Logon struct {
	SenderCompID     field.String
	TargetCompID     field.String
	HeartBtInt       field.Int[int32]
	Password         field.String
	DefaultApplVerID field.String
}

// NewLogon constructs a Logon with every string field blank-padded to its
// declared width.
func NewLogon() *Logon {
	return &Logon{
		SenderCompID:     field.NewCompID(),
		TargetCompID:     field.NewCompID(),
		Password:         field.NewFixedString(16),
		DefaultApplVerID: field.NewFixedString(32),
	}
}

func (m *Logon) MsgType() uint32 { return LogonMsgType }

func (m *Logon) WireSize() int {
	return sumSizes(&m.SenderCompID, &m.TargetCompID, &m.HeartBtInt, &m.Password, &m.DefaultApplVerID)
}

func (m *Logon) DecodeBody(body []byte) error {
	cur := wire.NewCursor(body)
	return decodeFields(cur, &m.SenderCompID, &m.TargetCompID, &m.HeartBtInt, &m.Password, &m.DefaultApplVerID)
}

func (m *Logon) EncodeBody(dst []byte) error {
	w := wire.NewWriter(dst)
	return encodeFields(w, &m.SenderCompID, &m.TargetCompID, &m.HeartBtInt, &m.Password, &m.DefaultApplVerID)
}

// Logout (MsgType 2): SessionStatus, Text.
type Logout struct {
	SessionStatus field.Int[int32]
	Text          field.String
}

// NewLogout constructs a blank Logout.
func NewLogout() *Logout {
	return &Logout{Text: field.NewFixedString(200)}
}

func (m *Logout) MsgType() uint32 { return LogoutMsgType }

func (m *Logout) WireSize() int {
	return sumSizes(&m.SessionStatus, &m.Text)
}

func (m *Logout) DecodeBody(body []byte) error {
	cur := wire.NewCursor(body)
	return decodeFields(cur, &m.SessionStatus, &m.Text)
}

func (m *Logout) EncodeBody(dst []byte) error {
	w := wire.NewWriter(dst)
	return encodeFields(w, &m.SessionStatus, &m.Text)
}

// Status returns the typed SessionStatus code.
func (m *Logout) Status() SessionStatus { return SessionStatus(m.SessionStatus.Value()) }

// Heartbeat (MsgType 3): empty body.
type Heartbeat struct{}

// NewHeartbeat constructs a Heartbeat.
func NewHeartbeat() *Heartbeat { return &Heartbeat{} }

func (m *Heartbeat) MsgType() uint32 { return HeartbeatMsgType }

func (m *Heartbeat) WireSize() int { return 0 }

func (m *Heartbeat) DecodeBody(body []byte) error { return nil }

func (m *Heartbeat) EncodeBody(dst []byte) error { return nil }

// BusinessReject (MsgType 8): RefSeqNum, RefMsgType, BusinessRejectRefID,
// BusinessRejectReason, BusinessRejectText.
type BusinessReject struct {
	RefSeqNum            field.Int[int64]
	RefMsgType           field.Int[uint32]
	BusinessRejectRefID  field.String
	BusinessRejectReason field.Int[uint16]
	BusinessRejectText   field.String
}

// NewBusinessReject constructs a blank BusinessReject.
func NewBusinessReject() *BusinessReject {
	return &BusinessReject{
		BusinessRejectRefID: field.NewFixedString(10),
		BusinessRejectText:  field.NewFixedString(50),
	}
}

func (m *BusinessReject) MsgType() uint32 { return BusinessRejectMsgType }

func (m *BusinessReject) WireSize() int {
	return sumSizes(&m.RefSeqNum, &m.RefMsgType, &m.BusinessRejectRefID, &m.BusinessRejectReason, &m.BusinessRejectText)
}

func (m *BusinessReject) DecodeBody(body []byte) error {
	cur := wire.NewCursor(body)
	return decodeFields(cur, &m.RefSeqNum, &m.RefMsgType, &m.BusinessRejectRefID, &m.BusinessRejectReason, &m.BusinessRejectText)
}

func (m *BusinessReject) EncodeBody(dst []byte) error {
	w := wire.NewWriter(dst)
	return encodeFields(w, &m.RefSeqNum, &m.RefMsgType, &m.BusinessRejectRefID, &m.BusinessRejectReason, &m.BusinessRejectText)
}
