// Command speechplayerdemo is a reference host for the speechplayer
// package: it takes raw IPA text, drives the planner/DSP engine, and
// either plays the result through the default audio device or dumps it
// to a WAV file.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/oto"

	"github.com/gophone/speechplayer/klatt"
	"github.com/gophone/speechplayer/speechplayer"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00AFFF"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	valueStyle = lipgloss.NewStyle().Bold(true)
	errStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF4040"))
)

// CLI defines the command-line interface.
type CLI struct {
	Text       string  `arg:"" help:"IPA text to speak."`
	Language   string  `short:"l" default:"en-us" help:"Normalization language (en-us, en, es)."`
	Rate       float64 `default:"50" help:"Host rate control, 0-100."`
	Pitch      float64 `default:"50" help:"Host pitch control, 0-100."`
	Volume     float64 `default:"75" help:"Host volume control, 0-100."`
	Inflection float64 `default:"50" help:"Host inflection control, 0-100."`
	Voice      string  `help:"Named voice preset (Adam, Benjamin, Caleb, David)."`
	Wav        string  `help:"Write PCM to this WAV file instead of playing it live."`
}

func main() {
	cli := &CLI{}
	kong.Parse(cli, kong.Name("speechplayerdemo"),
		kong.Description("Reference host for the speechplayer formant synthesizer."))

	fmt.Println(titleStyle.Render("speechplayerdemo"))
	printInfo("text", cli.Text)
	printInfo("language", cli.Language)

	player := speechplayer.New(nil)
	defer player.Terminate()

	req := speechplayer.SpeakRequest{
		Text:       cli.Text,
		Language:   cli.Language,
		Speed:      speechplayer.RateToSpeed(cli.Rate),
		BasePitch:  speechplayer.PitchToBasePitch(cli.Pitch),
		Inflection: speechplayer.InflectionToScalar(cli.Inflection),
	}
	if cli.Voice != "" {
		presets := voicePresetsByName()
		if p, ok := presets[cli.Voice]; ok {
			req.Preset = &p
		} else {
			fmt.Fprintln(os.Stderr, errStyle.Render(fmt.Sprintf("unknown voice %q", cli.Voice)))
			os.Exit(1)
		}
	}
	player.Speak(req)

	samples := drain(player)
	applyGain(samples, speechplayer.VolumeToGain(cli.Volume))

	if cli.Wav != "" {
		if err := writeWav(cli.Wav, samples); err != nil {
			fmt.Fprintln(os.Stderr, errStyle.Render(err.Error()))
			os.Exit(1)
		}
		printInfo("wrote", cli.Wav)
		return
	}

	if err := play(samples); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func printInfo(key, value string) {
	fmt.Printf("%s %s\n", keyStyle.Render(key+":"), valueStyle.Render(value))
}

// drain pulls blocks from the player until four pulls in a row come
// back empty (10ms apart), which is as close to "utterance finished" as the pull model gives a
// demo host without its own index-driven completion tracking.
func drain(p *speechplayer.Player) []int16 {
	const block = klatt.SampleRate / 20 // 50ms blocks
	var out []int16
	idleBlocks := 0
	for idleBlocks < 4 {
		s := p.Synthesize(block)
		out = append(out, s...)
		if len(s) == 0 {
			idleBlocks++
			time.Sleep(10 * time.Millisecond)
			continue
		}
		idleBlocks = 0
	}
	return out
}

func applyGain(samples []int16, gain float64) {
	for i, s := range samples {
		v := float64(s) * gain
		if v > 32767 {
			v = 32767
		}
		if v < -32768 {
			v = -32768
		}
		samples[i] = int16(v)
	}
}

func writeWav(path string, samples []int16) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wav: %w", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, klatt.SampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: klatt.SampleRate},
		Data:   make([]int, len(samples)),
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	return enc.Close()
}

func play(samples []int16) error {
	ctx, err := oto.NewContext(klatt.SampleRate, 1, 2, 4096)
	if err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	defer ctx.Close()

	p := ctx.NewPlayer()
	defer p.Close()

	raw := make([]byte, len(samples)*2)
	for i, s := range samples {
		raw[2*i] = byte(s)
		raw[2*i+1] = byte(s >> 8)
	}
	if _, err := p.Write(raw); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	return nil
}
