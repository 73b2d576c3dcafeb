package evolution

// SpriteKeys are the symbolic asset keys handed to the presentation adapter.
// The adapter owns the missing-asset fallback; the resolver only names keys.
type SpriteKeys struct {
	Body  string
	Eyes  string
	Mouth string
}

const (
	DefaultEyes  = "normal"
	DefaultMouth = "normal"
)

// SpritesFor picks the asset keys for a resolved type plus the face
// attributes stored on the record (admin-settable).
func SpritesFor(typ, eyes, mouth string) SpriteKeys {
	if eyes == "" {
		eyes = DefaultEyes
	}
	if mouth == "" {
		mouth = DefaultMouth
	}
	return SpriteKeys{Body: typ, Eyes: "eyes_" + eyes, Mouth: "mouth_" + mouth}
}
