package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/daic-network/daic-node/utils"
)

// maxBodyBytes bounds transaction request bodies.
const maxBodyBytes = 1 << 20

// decodeBody reads a JSON request into dst, rejecting unknown fields and
// trailing data. It writes a 400 response and returns false on failure.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("malformed request body: %v", err)})
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "malformed request body: trailing data"})
		return false
	}
	return true
}

// handleCreateProposal handles POST /api/v1/tx/create-proposal
func (s *Server) handleCreateProposal(w http.ResponseWriter, r *http.Request) {
	var req CreateProposalRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	id, err := s.ledger.CreateProposal(req.Caller, req.Title, req.Description)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeData(w, ProposalIDResponse{ProposalID: id})
}

// handleContribute handles POST /api/v1/tx/contribute
func (s *Server) handleContribute(w http.ResponseWriter, r *http.Request) {
	var req ContributeRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	amount, err := utils.ParseAmount(req.Amount)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := s.ledger.Contribute(req.Caller, req.ProposalID, amount); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeData(w, ProposalIDResponse{ProposalID: req.ProposalID})
}

// handleMarkFunded handles POST /api/v1/tx/mark-funded
func (s *Server) handleMarkFunded(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.ledger.MarkFunded(req.Caller, req.ProposalID); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeData(w, ProposalIDResponse{ProposalID: req.ProposalID})
}

// handleMarkCompleted handles POST /api/v1/tx/mark-completed
func (s *Server) handleMarkCompleted(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.ledger.MarkCompleted(req.Caller, req.ProposalID); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeData(w, ProposalIDResponse{ProposalID: req.ProposalID})
}

// handleUpdateParams handles POST /api/v1/tx/update-params
func (s *Server) handleUpdateParams(w http.ResponseWriter, r *http.Request) {
	var req UpdateParamsRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.ledger.UpdateParams(req.Caller, req.Params); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeData(w, req.Params)
}

// handleRegisterDID handles POST /api/v1/tx/register-did
func (s *Server) handleRegisterDID(w http.ResponseWriter, r *http.Request) {
	var req RegisterDIDRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	doc, err := s.ledger.RegisterDID(req.Caller, req.VerificationMethod)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeData(w, doc)
}

// handleRevokeDID handles POST /api/v1/tx/revoke-did
func (s *Server) handleRevokeDID(w http.ResponseWriter, r *http.Request) {
	var req RevokeDIDRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.ledger.RevokeDID(req.Caller, req.Account); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeData(w, req)
}

// handleRegisterDataset handles POST /api/v1/tx/register-dataset
func (s *Server) handleRegisterDataset(w http.ResponseWriter, r *http.Request) {
	var req RegisterDatasetRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	dataset, err := s.ledger.RegisterDataset(req.Caller, req.ID, req.Title, req.Description, req.Lineage)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeData(w, dataset)
}
