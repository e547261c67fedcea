package misc

import (
	"encoding/json"
	"net/http"

	"github.com/2beens/gymload/internal/telemetry/tracing"
	"github.com/2beens/gymload/internal/workload"
	"github.com/2beens/gymload/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type Handler struct {
	versionInfo string
}

func NewHandler(versionInfo string) *Handler {
	return &Handler{
		versionInfo: versionInfo,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET", "OPTIONS").Name("version")
	mainRouter.HandleFunc("/gymstats/muscle-groups", handler.handleGetMuscleGroups).Methods("GET", "OPTIONS").Name("muscle-groups")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.versionInfo")
	defer span.End()

	span.SetAttributes(attribute.String("version", handler.versionInfo))
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

// handleGetMuscleGroups lists the weekly set ranges the program analysis
// classifies against.
func (handler *Handler) handleGetMuscleGroups(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.muscleGroups")
	defer span.End()

	groupsJson, err := json.Marshal(workload.ReferenceRanges())
	if err != nil {
		log.Errorf("marshal muscle groups: %s", err)
		http.Error(w, "failed to get muscle groups", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, groupsJson)
}
