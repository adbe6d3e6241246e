package entity

// JointID indexes a point in the skeleton arena
type JointID int

const (
	Hip JointID = iota
	Neck
	Head
	KneeL
	AnkleL
	KneeR
	AnkleR
	ElbowL
	HandL
	ElbowR
	HandR

	JointCount int = iota
)

// String returns the joint name
func (j JointID) String() string {
	switch j {
	case Hip:
		return "Hip"
	case Neck:
		return "Neck"
	case Head:
		return "Head"
	case KneeL:
		return "KneeL"
	case AnkleL:
		return "AnkleL"
	case KneeR:
		return "KneeR"
	case AnkleR:
		return "AnkleR"
	case ElbowL:
		return "ElbowL"
	case HandL:
		return "HandL"
	case ElbowR:
		return "ElbowR"
	case HandR:
		return "HandR"
	default:
		return "Unknown"
	}
}

// Rest-pose offsets from the spawn point (x, y). Only Y differs per joint.
var jointSpawnOffsetY = [JointCount]float64{
	Hip:    0,
	Neck:   -50,
	Head:   -65,
	KneeL:  35,
	AnkleL: 70,
	KneeR:  35,
	AnkleR: 70,
	ElbowL: -25,
	HandL:  0,
	ElbowR: -25,
	HandR:  0,
}

// Bone lengths
const (
	TorsoLength = 45.0
	HeadLength  = 18.0
	LegSegment  = 38.0
	ArmSegment  = 26.0
)

// Topology is the fixed bone tree of the character, rooted at the hip
var Topology = []Bone{
	{A: Hip, B: Neck, Length: TorsoLength},
	{A: Neck, B: Head, Length: HeadLength},
	{A: Hip, B: KneeL, Length: LegSegment},
	{A: KneeL, B: AnkleL, Length: LegSegment},
	{A: Hip, B: KneeR, Length: LegSegment},
	{A: KneeR, B: AnkleR, Length: LegSegment},
	{A: Neck, B: ElbowL, Length: ArmSegment},
	{A: ElbowL, B: HandL, Length: ArmSegment},
	{A: Neck, B: ElbowR, Length: ArmSegment},
	{A: ElbowR, B: HandR, Length: ArmSegment},
}
