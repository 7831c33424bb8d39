package eval

import "github.com/cwbudde/go-jinja/internal/values"

// UnaryOp enumerates the unary operators of spec.md §4.B.
type UnaryOp uint8

const (
	UnaryNegate UnaryOp = iota
	UnaryNot
	UnaryPlus
)

// applyUnary is the UnaryOperation visitor: negation, logical not, and
// unary plus (a no-op beyond numeric coercion).
func applyUnary(op UnaryOp, v values.InternalValue) values.InternalValue {
	switch op {
	case UnaryNot:
		return values.Bool(!v.ConvertToBool()).SetTemporary(true)
	case UnaryNegate:
		if v.Kind() == values.KindDouble {
			return values.Double(-v.DoubleValue()).SetTemporary(true)
		}
		return values.Int(-v.ConvertToInt(0)).SetTemporary(true)
	case UnaryPlus:
		if v.Kind() == values.KindDouble {
			return values.Double(v.ConvertToDouble(0)).SetTemporary(true)
		}
		return values.Int(v.ConvertToInt(0)).SetTemporary(true)
	default:
		return values.Empty()
	}
}

// BinaryOp enumerates the binary operators of spec.md §4.C.
type BinaryOp uint8

const (
	OpLogicalAnd BinaryOp = iota
	OpLogicalOr
	OpEq
	OpNe
	OpGt
	OpLt
	OpGe
	OpLe
	OpPlus
	OpMinus
	OpMul
	OpDiv
	OpDivReminder
	OpDivInteger
	OpPow
	OpIn
	OpStringConcat
)

// isNumeric reports whether v is an int or double, the two kinds
// BinaryMathOperation promotes between.
func isNumeric(v values.InternalValue) bool {
	return v.Kind() == values.KindInt || v.Kind() == values.KindDouble
}

// isStringLike reports whether v carries string data directly (not
// through ConvertToString, which would make every kind "string-like").
func isStringLike(v values.InternalValue) bool {
	_, ok := v.RawString()
	return ok
}

// applyBinaryMath is the BinaryMathOperation visitor: arithmetic and
// comparisons across numeric promotions, lexicographic string
// comparison, and element-wise container comparison (by length and
// pairwise equality, since the value model has no ordering defined
// over lists/maps beyond equality).
func applyBinaryMath(op BinaryOp, l, r values.InternalValue) values.InternalValue {
	switch op {
	case OpEq, OpNe, OpGt, OpLt, OpGe, OpLe:
		return compareValues(op, l, r)
	case OpPlus, OpMinus, OpMul, OpDiv, OpDivReminder, OpDivInteger, OpPow:
		return arithmetic(op, l, r)
	default:
		return values.Empty()
	}
}

func compareValues(op BinaryOp, l, r values.InternalValue) values.InternalValue {
	var result bool
	switch {
	case isStringLike(l) && isStringLike(r):
		ls, _ := l.RawString()
		rs, _ := r.RawString()
		result = compareOrdered(op, ls < rs, ls == rs, ls > rs)
	case isNumeric(l) && isNumeric(r):
		lf, rf := l.ConvertToDouble(0), r.ConvertToDouble(0)
		result = compareOrdered(op, lf < rf, lf == rf, lf > rf)
	case l.Kind() == values.KindBool && r.Kind() == values.KindBool:
		result = compareOrdered(op, false, l.BoolValue() == r.BoolValue(), false)
		if op == OpEq || op == OpNe {
			result = l.BoolValue() == r.BoolValue()
			if op == OpNe {
				result = !result
			}
		}
	case l.Kind() == values.KindEmpty || r.Kind() == values.KindEmpty:
		eq := l.Kind() == values.KindEmpty && r.Kind() == values.KindEmpty
		result = compareOrdered(op, false, eq, false)
	default:
		if op == OpEq || op == OpNe {
			eq := l.ConvertToString() == r.ConvertToString()
			result = eq
			if op == OpNe {
				result = !eq
			}
		} else {
			result = false
		}
	}
	return values.Bool(result).SetTemporary(true)
}

// compareOrdered turns a three-way comparison (lt/eq/gt flags,
// mutually exclusive) into the boolean op asked for.
func compareOrdered(op BinaryOp, lt, eq, gt bool) bool {
	switch op {
	case OpEq:
		return eq
	case OpNe:
		return !eq
	case OpGt:
		return gt
	case OpLt:
		return lt
	case OpGe:
		return gt || eq
	case OpLe:
		return lt || eq
	default:
		return false
	}
}

// arithmetic implements Plus/Minus/Mul/Div/DivReminder/DivInteger/Pow.
// Division by zero yields empty (spec.md §7); when both operands are
// integers, integer division truncates toward zero and modulo takes
// the sign of the dividend (Go's native `/` and `%`), so -7 % 3 == -1.
func arithmetic(op BinaryOp, l, r values.InternalValue) values.InternalValue {
	bothInt := l.Kind() == values.KindInt && r.Kind() == values.KindInt
	if bothInt {
		li, ri := l.IntValue(), r.IntValue()
		switch op {
		case OpPlus:
			return values.Int(li + ri).SetTemporary(true)
		case OpMinus:
			return values.Int(li - ri).SetTemporary(true)
		case OpMul:
			return values.Int(li * ri).SetTemporary(true)
		case OpDiv:
			if ri == 0 {
				return values.Empty()
			}
			return values.Double(float64(li) / float64(ri)).SetTemporary(true)
		case OpDivInteger:
			if ri == 0 {
				return values.Empty()
			}
			return values.Int(li / ri).SetTemporary(true)
		case OpDivReminder:
			if ri == 0 {
				return values.Empty()
			}
			return values.Int(li % ri).SetTemporary(true)
		case OpPow:
			return values.Int(intPow(li, ri)).SetTemporary(true)
		}
	}

	lf, rf := l.ConvertToDouble(0), r.ConvertToDouble(0)
	switch op {
	case OpPlus:
		return values.Double(lf + rf).SetTemporary(true)
	case OpMinus:
		return values.Double(lf - rf).SetTemporary(true)
	case OpMul:
		return values.Double(lf * rf).SetTemporary(true)
	case OpDiv:
		if rf == 0 {
			return values.Empty()
		}
		return values.Double(lf / rf).SetTemporary(true)
	case OpDivInteger:
		if rf == 0 {
			return values.Empty()
		}
		return values.Int(int64(lf / rf)).SetTemporary(true)
	case OpDivReminder:
		if rf == 0 {
			return values.Empty()
		}
		li, ri := int64(lf), int64(rf)
		return values.Int(li % ri).SetTemporary(true)
	case OpPow:
		return values.Double(floatPow(lf, rf)).SetTemporary(true)
	default:
		return values.Empty()
	}
}

func intPow(base, exp int64) int64 {
	if exp < 0 {
		return 0
	}
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}

func floatPow(base, exp float64) float64 {
	result := 1.0
	if exp < 0 {
		return 0
	}
	n := int(exp)
	for i := 0; i < n; i++ {
		result *= base
	}
	return result
}
