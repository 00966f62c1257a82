package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/spf13/cast"

	"github.com/daic-network/daic-node/utils"
)

const defaultListLimit = 50

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleProposals handles GET /api/v1/proposals
func (s *Server) handleProposals(w http.ResponseWriter, r *http.Request) {
	proposals, err := s.ledger.GetAllProposals()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeData(w, proposals)
}

// handleProposal handles GET /api/v1/proposals/{id}
func (s *Server) handleProposal(w http.ResponseWriter, r *http.Request) {
	id, ok := s.proposalID(w, r)
	if !ok {
		return
	}

	proposal, found, err := s.ledger.GetProposal(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !found {
		s.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("proposal %d not found", id)})
		return
	}
	s.writeData(w, proposal)
}

// handleMatchedFunding handles GET /api/v1/proposals/{id}/matched-funding
func (s *Server) handleMatchedFunding(w http.ResponseWriter, r *http.Request) {
	id, ok := s.proposalID(w, r)
	if !ok {
		return
	}

	matched, err := s.ledger.GetMatchedFunding(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeData(w, MatchedFundingResponse{ProposalID: id, Matched: matched.String()})
}

// handleContributions handles GET /api/v1/proposals/{id}/contributions?limit=<n>
func (s *Server) handleContributions(w http.ResponseWriter, r *http.Request) {
	if !s.requireReadModel(w) {
		return
	}
	id, ok := s.proposalID(w, r)
	if !ok {
		return
	}
	limit, ok := s.limit(w, r)
	if !ok {
		return
	}

	records, err := s.readModel.ListContributions(id, limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeData(w, records)
}

// handleContributors handles GET /api/v1/proposals/{id}/contributors
func (s *Server) handleContributors(w http.ResponseWriter, r *http.Request) {
	if !s.requireReadModel(w) {
		return
	}
	id, ok := s.proposalID(w, r)
	if !ok {
		return
	}

	totals, err := s.readModel.ContributorTotals(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeData(w, totals)
}

// handleTopProposals handles GET /api/v1/top-proposals?limit=<n>
func (s *Server) handleTopProposals(w http.ResponseWriter, r *http.Request) {
	if !s.requireReadModel(w) {
		return
	}
	limit, ok := s.limit(w, r)
	if !ok {
		return
	}

	records, err := s.readModel.TopProposals(limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeData(w, records)
}

// handleProposalCount handles GET /api/v1/proposal-count
func (s *Server) handleProposalCount(w http.ResponseWriter, r *http.Request) {
	count, err := s.ledger.GetProposalCount()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeData(w, count)
}

// handleMatchingPool handles GET /api/v1/matching-pool
func (s *Server) handleMatchingPool(w http.ResponseWriter, r *http.Request) {
	pool, err := s.ledger.GetMatchingPool()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeData(w, pool)
}

// handleMatchedFundingAll handles GET /api/v1/matched-funding
func (s *Server) handleMatchedFundingAll(w http.ResponseWriter, r *http.Request) {
	all, err := s.ledger.GetMatchedFundingAll()
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := make([]MatchedFundingResponse, 0, len(all))
	for _, m := range all {
		resp = append(resp, MatchedFundingResponse{ProposalID: m.ProposalID, Matched: m.Matched.String()})
	}
	s.writeData(w, resp)
}

// handleParams handles GET /api/v1/params
func (s *Server) handleParams(w http.ResponseWriter, r *http.Request) {
	params, err := s.ledger.GetParams()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeData(w, params)
}

// handleDIDs handles GET /api/v1/dids
func (s *Server) handleDIDs(w http.ResponseWriter, r *http.Request) {
	docs, err := s.ledger.GetAllDIDs()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeData(w, docs)
}

// handleDID handles GET /api/v1/dids/{account}
func (s *Server) handleDID(w http.ResponseWriter, r *http.Request) {
	account := mux.Vars(r)["account"]

	doc, found, err := s.ledger.ResolveDID(account)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !found {
		s.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("no did registered for %s", account)})
		return
	}
	s.writeData(w, doc)
}

// handleDatasets handles GET /api/v1/datasets
func (s *Server) handleDatasets(w http.ResponseWriter, r *http.Request) {
	datasets, err := s.ledger.GetAllDatasets()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeData(w, datasets)
}

// handleDataset handles GET /api/v1/datasets/{id}
func (s *Server) handleDataset(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	dataset, found, err := s.ledger.GetDataset(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !found {
		s.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("dataset %s not found", id)})
		return
	}
	s.writeData(w, dataset)
}

// handleDatasetHistory handles GET /api/v1/datasets/{id}/history
func (s *Server) handleDatasetHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.ledger.GetDatasetHistory(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeData(w, history)
}

// handleDatasetVersion handles GET /api/v1/datasets/{id}/versions/{version}
func (s *Server) handleDatasetVersion(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	version, err := utils.ParseDatasetVersion(vars["version"])
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	dataset, found, err := s.ledger.GetDatasetVersion(vars["id"], version)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !found {
		s.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("dataset %s has no version %d", vars["id"], version)})
		return
	}
	s.writeData(w, dataset)
}

func (s *Server) proposalID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := utils.ParseProposalID(mux.Vars(r)["id"])
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return 0, false
	}
	return id, true
}

func (s *Server) limit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultListLimit, true
	}
	limit, err := cast.ToIntE(raw)
	if err != nil || limit < 0 {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid limit %q", raw)})
		return 0, false
	}
	return limit, true
}

func (s *Server) requireReadModel(w http.ResponseWriter) bool {
	if s.readModel == nil {
		s.writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "indexer is disabled"})
		return false
	}
	return true
}

func (s *Server) writeData(w http.ResponseWriter, data interface{}) {
	s.writeJSON(w, http.StatusOK, QueryResponse{
		Data:        data,
		Height:      s.ledger.Height(),
		LastFetched: s.now().UTC(),
	})
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		s.logger.Error().Err(err).Msg("request failed")
	}
	s.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn().Err(err).Msg("failed to write response")
	}
}
