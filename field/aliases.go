package field

// The functions below stand in for the wire format's named type aliases
// (spec section 3). Go has no way to parameterize a type by a constant
// integer the way the protocol's CompID = String<20> or Price =
// Number<13,4> aliases do, so each alias is instead a constructor that
// pins the width/scale a message definition needs.

// NewCompID constructs the 20-byte CompID string field.
func NewCompID() String { return NewFixedString(20) }

// NewSecurityID constructs the 8-byte SecurityID string field.
func NewSecurityID() String { return NewFixedString(8) }

// NewPrice constructs the Number<13,4> price field.
func NewPrice() Number { return NewNumber(13, 4) }

// NewQty constructs the Number<15,2> quantity field.
func NewQty() Number { return NewNumber(15, 2) }

// NewAmt constructs the Number<18,4> amount field.
func NewAmt() Number { return NewNumber(18, 4) }

// NewSeqNum constructs the signed 64-bit sequence-number field.
func NewSeqNum() Int[int64] { return NewInt[int64](0) }

// NewLength constructs the unsigned 32-bit length field.
func NewLength() Int[uint32] { return NewInt[uint32](0) }

// NewNumInGroup constructs the unsigned 32-bit repeating-group count field.
func NewNumInGroup() Int[uint32] { return NewInt[uint32](0) }
