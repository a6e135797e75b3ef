package aexvm

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/aexlang/aex/nat"
)

// Snapshot writes the machine state to w. A parked machine can be
// brought back with RestoreMachine and continue where it stopped.
func (m *Machine) Snapshot(w io.Writer) error {
	return gob.NewEncoder(w).Encode(m)
}

// RestoreMachine reads a machine state written by Snapshot.
func RestoreMachine(r io.Reader) (*Machine, error) {
	m := new(Machine)
	if err := gob.NewDecoder(r).Decode(m); err != nil {
		return nil, err
	}
	return m, nil
}

const (
	opPush byte = iota + 1
	opAdd
	opSub
	opMul
)

type instRecord struct {
	Op byte
	N  nat.Nat
}

// GobEncode implements gob.GobEncoder. Instructions travel as opcode
// records instead of interface values.
func (p Program) GobEncode() ([]byte, error) {
	records := make([]instRecord, 0, len(p))
	for _, inst := range p {
		switch inst := inst.(type) {
		case Push:
			records = append(records, instRecord{Op: opPush, N: inst.N})
		case Add:
			records = append(records, instRecord{Op: opAdd})
		case Sub:
			records = append(records, instRecord{Op: opSub})
		case Mul:
			records = append(records, instRecord{Op: opMul})
		default:
			return nil, fmt.Errorf("unknown instruction: %T", inst)
		}
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (p *Program) GobDecode(data []byte) error {
	var records []instRecord
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&records); err != nil {
		return err
	}
	ret := make(Program, 0, len(records))
	for _, r := range records {
		switch r.Op {
		case opPush:
			ret = append(ret, Push{N: r.N})
		case opAdd:
			ret = append(ret, Add{})
		case opSub:
			ret = append(ret, Sub{})
		case opMul:
			ret = append(ret, Mul{})
		default:
			return fmt.Errorf("unknown opcode %d in snapshot", r.Op)
		}
	}
	*p = ret
	return nil
}
