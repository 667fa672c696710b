package cmd

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/cancrizans/analyze"
	"github.com/jsphweid/cancrizans/constants"
	"github.com/jsphweid/cancrizans/fixture"
	"github.com/jsphweid/cancrizans/model"
	"github.com/jsphweid/cancrizans/verify"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the verify/analyze API",
	Long:  `Serves the verify/analyze API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

var serveLogger *zap.Logger

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func decodeVoices(dtos []model.VoiceDTO) ([]model.Voice, error) {
	voices := make([]model.Voice, 0, len(dtos))
	for _, dto := range dtos {
		v, err := dto.ToVoice()
		if err != nil {
			return nil, err
		}
		voices = append(voices, v)
	}
	return voices, nil
}

func handleVerify(w http.ResponseWriter, r *http.Request) {
	var input model.VerifyRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}

	voices, err := decodeVoices(input.Voices)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	var report verify.Report
	switch input.Mode {
	case "", "cross":
		if len(voices) != 2 {
			writeError(w, 400, "cross mode wants exactly 2 voices")
			return
		}
		report = verify.CrossVoice(voices[0], voices[1])
	case "self":
		if len(voices) != 1 {
			writeError(w, 400, "self mode wants exactly 1 voice")
			return
		}
		report = verify.SelfCheck(voices[0])
	default:
		writeError(w, 400, "unknown mode: "+input.Mode)
		return
	}

	serveLogger.Info("verified",
		zap.String("mode", string(report.Mode)),
		zap.Int("events", report.TotalEvents),
		zap.Bool("palindrome", report.IsPalindrome))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

type voiceAnalysis struct {
	Name      string                 `json:"name"`
	Intervals analyze.IntervalReport `json:"intervals"`
	Rhythm    analyze.RhythmReport   `json:"rhythm"`
}

type analyzeResponse struct {
	Voices    []voiceAnalysis        `json:"voices"`
	Harmonies analyze.HarmonicReport `json:"harmonies"`
}

func handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var input model.AnalyzeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}

	voices, err := decodeVoices(input.Voices)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	var res analyzeResponse
	score := model.NewScore(voices...)
	for _, v := range voices {
		res.Voices = append(res.Voices, voiceAnalysis{
			Name:      v.Name,
			Intervals: analyze.Intervals(v),
			Rhythm:    analyze.Rhythm(v),
		})
	}
	res.Harmonies = analyze.Harmonies(score)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func handleFixture(w http.ResponseWriter, r *http.Request) {
	score := fixture.CrabCanon()
	voices := make([]model.VoiceDTO, len(score.Voices))
	for i, v := range score.Voices {
		voices[i] = model.VoiceToDTO(v)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(voices)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func serve() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("Could not create logger: " + err.Error())
	}
	defer logger.Sync()
	serveLogger = logger

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/verify", handleVerify).Methods("POST")
	router.HandleFunc("/analyze", handleAnalyze).Methods("POST")
	router.HandleFunc("/fixture", handleFixture).Methods("GET")
	router.HandleFunc("/health", handleHealth).Methods("GET")

	handler := cors.Default().Handler(router)
	addr := ":" + constants.GetServerPort()
	logger.Info("listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
