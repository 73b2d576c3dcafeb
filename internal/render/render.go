package render

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/nickshouse/Chao-Bot-sub000/internal/viewer"
)

// Renderer is the presentation adapter: it consumes symbolic sprite keys and
// coordinates and produces images. The chat client owns the real
// implementation; the core never touches pixel logic.
type Renderer interface {
	RenderPetPortrait(background, body, eyes, mouth string) ([]byte, error)
	RenderStatSheet(sheet viewer.StatSheet) ([]byte, error)
}

// Notifier delivers owner-facing messages that are not replies to a command,
// such as HP threshold warnings from the decay loop.
type Notifier interface {
	NotifyHP(ownerId, petName string, threshold int64)
	NotifyCocoonDone(ownerId, petName, kind string)
}

// knownBodies is the sprite sheet inventory. A computed type with no asset
// renders as the missing placeholder; the resolver does not know about this.
var knownBodies = map[string]struct{}{}

func init() {
	for _, align := range []string{"neutral", "hero", "dark"} {
		knownBodies[align+"_normal_1"] = struct{}{}
		for _, suffix := range []string{"normal", "run", "power", "swim", "fly"} {
			knownBodies[align+"_normal_"+suffix+"_2"] = struct{}{}
			knownBodies[align+"_"+suffix+"_3"] = struct{}{}
			for _, prefix := range []string{"normal", "run", "power", "swim", "fly"} {
				knownBodies[align+"_"+prefix+"_"+suffix+"_4"] = struct{}{}
			}
		}
	}
}

const MissingSprite = "missing"

// BodyKeyOrMissing maps a type key onto the sprite inventory.
func BodyKeyOrMissing(typ string) string {
	if _, ok := knownBodies[typ]; ok {
		return typ
	}
	return MissingSprite
}

// LogAdapter is the default presentation adapter: it logs what would be
// rendered or sent. The chat-platform client replaces it in production.
type LogAdapter struct {
}

func NewLogAdapter() *LogAdapter {
	return &LogAdapter{}
}

func (a *LogAdapter) RenderPetPortrait(background, body, eyes, mouth string) ([]byte, error) {
	body = BodyKeyOrMissing(body)
	log.Infof("render portrait bg=%s body=%s eyes=%s mouth=%s", background, body, eyes, mouth)
	return []byte(fmt.Sprintf("portrait:%s/%s/%s/%s", background, body, eyes, mouth)), nil
}

func (a *LogAdapter) RenderStatSheet(sheet viewer.StatSheet) ([]byte, error) {
	log.Infof("render stat sheet for %s", sheet.PetName)
	return []byte("statsheet:" + sheet.PetName), nil
}

func (a *LogAdapter) NotifyHP(ownerId, petName string, threshold int64) {
	log.Warnf("notify %s: %s is down to %d HP", ownerId, petName, threshold)
}

func (a *LogAdapter) NotifyCocoonDone(ownerId, petName, kind string) {
	log.Infof("notify %s: %s finished %s cocoon", ownerId, petName, kind)
}
