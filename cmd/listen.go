package cmd

import (
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/cancrizans/model"
	"github.com/jsphweid/cancrizans/verify"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Listens to a MIDI port and palindrome-checks what you play",
	Long:  `Listens to a MIDI port and palindrome-checks what you play`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

// playedNote tracks an in-flight or finished live note in wall time; beat
// durations get quantized from the note length once it ends.
type playedNote struct {
	key     uint8
	startMs int32
	endMs   int32
}

func quantizeDuration(ms int32) model.Duration {
	// nearest half beat at 120bpm (500ms per beat), floor of a half beat
	halves := (int64(ms) + 125) / 250
	if halves < 1 {
		halves = 1
	}
	return model.MustDuration(halves, 2)
}

func listen() {
	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI input port")
		return
	}

	var mu sync.Mutex
	var played []playedNote
	open := make(map[uint8]int)

	check := func() {
		mu.Lock()
		voice := model.Voice{Name: "played"}
		for _, pn := range played {
			if pn.endMs <= pn.startMs {
				continue
			}
			voice.Events = append(voice.Events, model.MustNote(model.Pitch(pn.key), quantizeDuration(pn.endMs-pn.startMs)))
		}
		mu.Unlock()

		if voice.Len() < 2 {
			return
		}
		report := verify.SelfCheck(voice)
		fmt.Printf("%d notes, %d/%d pairs matched, palindrome=%v\n",
			voice.Len(), report.MatchedPairs, report.TotalPairs, report.IsPalindrome)
	}

	// re-verify only once the player pauses
	debounced := debounce.New(500 * time.Millisecond)

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			open[key] = len(played)
			played = append(played, playedNote{key: key, startMs: timestampms})
			mu.Unlock()
		case msg.GetNoteEnd(&ch, &key):
			mu.Lock()
			if i, ok := open[key]; ok {
				played[i].endMs = timestampms
				delete(open, key)
			}
			mu.Unlock()
			debounced(check)
		default:
			// ignore
		}
	})

	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	fmt.Println("listening... play something palindromic (ctrl-c to quit)")
	time.Sleep(time.Second * 5000) // lol
	stop()
}
