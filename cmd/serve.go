package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/partgen/constants"
	"github.com/jsphweid/partgen/db"
	"github.com/jsphweid/partgen/generate"
	"github.com/jsphweid/partgen/instrument"
	"github.com/jsphweid/partgen/model"
	"github.com/jsphweid/partgen/score"
	"github.com/jsphweid/partgen/scorefile"
)

var serveRegistry instrument.Registry

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves part generation over HTTP",
	Long:  `Serves part generation over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// LoadServeFiles prepares server state; separated out so tests can call the
// handlers directly.
func LoadServeFiles() {
	serveRegistry = loadRegistry()
	if err := os.MkdirAll(constants.GetOutDir(), 0777); err != nil {
		panic("Could not create output dir: " + err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var input model.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}

	s, err := score.FromDocument(input.Score)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}
	reg := serveRegistry
	if len(input.Score.Instruments) > 0 {
		descs := make([]model.Descriptor, 0, len(input.Score.Instruments))
		for _, d := range input.Score.Instruments {
			descs = append(descs, d)
		}
		reg = reg.With(descs...)
	}

	// blank metadata can be filled from the metadata table when the caller
	// names the piece
	if input.PieceID != "" && s.Title == "" && constants.GetMetadataTable() != "" {
		if m, ok := db.GetPieceMetadatas([]string{input.PieceID})[input.PieceID]; ok {
			s.Title = m.Title
			s.Composer = m.Composer
		}
	}

	gen := generate.New(reg)
	completed, report, err := gen.Complete(s)
	if err != nil {
		writeError(w, 422, err.Error())
		return
	}

	id := uuid.New().String()
	path := filepath.Join(constants.GetOutDir(), id+".yaml")
	if err := scorefile.Save(path, completed, reg); err != nil {
		fmt.Println("Could not persist generated score: " + err.Error())
	}

	res := model.GenerateResponse{
		ID:     id,
		Score:  completed.Document(reg.Lookup),
		Report: *report,
	}
	json.NewEncoder(w).Encode(res)
}

func HandleGetScore(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, 400, "Invalid score id")
		return
	}
	path := filepath.Join(constants.GetOutDir(), id+".yaml")
	s, reg, err := scorefile.Load(path, serveRegistry)
	if err != nil {
		writeError(w, 404, "No score with id "+id)
		return
	}
	json.NewEncoder(w).Encode(s.Document(reg.Lookup))
}

func serve() {
	LoadServeFiles()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/generate", HandleGenerate).Methods("POST")
	router.HandleFunc("/scores/{id}", HandleGetScore).Methods("GET")

	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(constants.DefaultAddr, handler))
}
