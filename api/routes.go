package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all HTTP routes for the API server
func (s *Server) setupRoutes() *mux.Router {
	r := mux.NewRouter()

	// Health check endpoint
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	}

	v1 := r.PathPrefix("/api/v1").Subrouter()

	// Ledger queries
	v1.HandleFunc("/proposals", s.handleProposals).Methods(http.MethodGet)
	v1.HandleFunc("/proposals/{id}", s.handleProposal).Methods(http.MethodGet)
	v1.HandleFunc("/proposals/{id}/matched-funding", s.handleMatchedFunding).Methods(http.MethodGet)
	v1.HandleFunc("/proposals/{id}/contributions", s.handleContributions).Methods(http.MethodGet)
	v1.HandleFunc("/proposals/{id}/contributors", s.handleContributors).Methods(http.MethodGet)
	v1.HandleFunc("/top-proposals", s.handleTopProposals).Methods(http.MethodGet)
	v1.HandleFunc("/proposal-count", s.handleProposalCount).Methods(http.MethodGet)
	v1.HandleFunc("/matching-pool", s.handleMatchingPool).Methods(http.MethodGet)
	v1.HandleFunc("/matched-funding", s.handleMatchedFundingAll).Methods(http.MethodGet)
	v1.HandleFunc("/params", s.handleParams).Methods(http.MethodGet)

	// Collaborator queries
	v1.HandleFunc("/dids", s.handleDIDs).Methods(http.MethodGet)
	v1.HandleFunc("/dids/{account}", s.handleDID).Methods(http.MethodGet)
	v1.HandleFunc("/datasets", s.handleDatasets).Methods(http.MethodGet)
	v1.HandleFunc("/datasets/{id}", s.handleDataset).Methods(http.MethodGet)
	v1.HandleFunc("/datasets/{id}/history", s.handleDatasetHistory).Methods(http.MethodGet)
	v1.HandleFunc("/datasets/{id}/versions/{version}", s.handleDatasetVersion).Methods(http.MethodGet)

	// Transactions
	tx := v1.PathPrefix("/tx").Subrouter()
	tx.HandleFunc("/create-proposal", s.handleCreateProposal).Methods(http.MethodPost)
	tx.HandleFunc("/contribute", s.handleContribute).Methods(http.MethodPost)
	tx.HandleFunc("/mark-funded", s.handleMarkFunded).Methods(http.MethodPost)
	tx.HandleFunc("/mark-completed", s.handleMarkCompleted).Methods(http.MethodPost)
	tx.HandleFunc("/update-params", s.handleUpdateParams).Methods(http.MethodPost)
	tx.HandleFunc("/register-did", s.handleRegisterDID).Methods(http.MethodPost)
	tx.HandleFunc("/revoke-did", s.handleRevokeDID).Methods(http.MethodPost)
	tx.HandleFunc("/register-dataset", s.handleRegisterDataset).Methods(http.MethodPost)

	return r
}
