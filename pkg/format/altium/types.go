package altium

// noComponent is the sentinel component_id meaning "unattached, belongs to
// the board" rather than any placed component (spec §4.5).
const noComponent = 0xFFFF

// boardVertex is one point of a Board6 KIND=0 board-outline record.
type boardVertex struct {
	X, Y             int32
	StartA, EndA     float64
	Radius           int32
	IsArc            bool
}

type trackRecord struct {
	Layer       int
	Net         int
	Component   int
	X1, Y1      int32
	X2, Y2      int32
	Width       int32
}

type arcRecord struct {
	Layer               int
	Net                 int
	Component           int
	CX, CY              int32
	Radius              int32
	StartAngle, EndAngle float64
	Width               int32
}

type viaRecord struct {
	Net                     int
	X, Y                    int32
	Diameter, Hole          int32
	StartLayer, EndLayer    int
}

type padRecord struct {
	Name       string
	Layer      int
	Net        int
	Component  int
	X, Y       int32
	TopW, TopH int32
	MidW, MidH int32
	BotW, BotH int32
	Hole       int32
	TopShape   int
	MidShape   int
	BotShape   int
	Rotation   float64
	Plated     bool
}

type textRecord struct {
	Text      string
	WideIdx   int
	Layer     int
	Component int
	X, Y      int32
	Height    int32
	Rotation  float64
	Mirror    bool
	Thickness int32
}

type fillRecord struct {
	Layer     int
	Component int
	X1, Y1    int32
	X2, Y2    int32
	Rotation  float64
}

type netRecord struct {
	Name string
}

type componentRecord struct {
	Index    int
	Name     string // designator, e.g. "R1"
	Footprint string
	Value    string
	Layer    int
	X, Y     int32
	Rotation float64
	Virtual  bool
	Kind     string // COMPONENTKIND value, upper-cased
}
