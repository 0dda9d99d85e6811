package metrics

// Attribute keys shared by the OTel instruments.
const (
	AttrSource = "source"
	AttrHit    = "hit"
)
