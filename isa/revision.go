package isa

// Revision is a revision of the CPU core.
type Revision int

//go:generate go tool stringer -linecomment -type=Revision
const (
	REV_1 = Revision(0) // v1
	REV_2 = Revision(1) // v2
	REV_3 = Revision(2) // v3

	REV_LATEST = REV_3
)

// introduced maps ops to the first revision that decodes them.
var introduced = map[Op]Revision{
	OP_PUSH:   REV_2,
	OP_POP:    REV_2,
	OP_SET_DP: REV_3,
}

// stackRelative is the first revision with stack pointer relative RAM.
const stackRelative = REV_3

// ParseRevision returns the revision for a name such as "v2".
func ParseRevision(name string) (rev Revision, err error) {
	for rev = REV_1; rev <= REV_LATEST; rev++ {
		if rev.String() == name {
			return
		}
	}

	err = ErrRevisionUnknown(name)
	return
}

// Check returns an error if the instruction is not available in this revision.
func (rev Revision) Check(inst Instruction) (err error) {
	if rev < REV_1 || rev > REV_LATEST {
		return ErrRevisionUnknown(rev.String())
	}

	first, ok := introduced[inst.Op]
	if ok && rev < first {
		return &ErrRevision{Rev: rev, Inst: inst}
	}

	if inst.Op.Class() == CLASS_UNARY {
		src := inst.Source
		if src.Kind == SOURCE_RAM && src.Base == BASE_SP && rev < stackRelative {
			return &ErrRevision{Rev: rev, Inst: inst}
		}
	}

	return
}
