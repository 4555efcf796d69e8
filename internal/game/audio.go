package game

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/particle-calc/internal/config"
	"github.com/iburimskiy/particle-calc/internal/sound"
)

var speakerOutput = sound.Output{
	Play:   speaker.Play,
	Lock:   speaker.Lock,
	Unlock: speaker.Unlock,
	Clear:  speaker.Clear,
}

func newClicker(sr beep.SampleRate) (*sound.Player, error) {
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return sound.NewPlayer(sr, config.VisualRingSize, speakerOutput), nil
}
