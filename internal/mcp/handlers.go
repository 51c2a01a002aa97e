package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/danlite/as3pkg/internal/classpath"
	as3errors "github.com/danlite/as3pkg/internal/errors"
	"github.com/danlite/as3pkg/internal/resolve"
)

// Result statuses of find_package
const (
	StatusFound     = "found"
	StatusAmbiguous = "ambiguous"
	StatusNotFound  = "not_found"
)

type FindPackageParams struct {
	Word string `json:"word"`
}

type FindPackageResponse struct {
	Word        string   `json:"word"`
	Status      string   `json:"status"`
	Path        string   `json:"path,omitempty"`
	// Candidates holds exact then partial matches in menu order, without the separator
	Candidates  []string `json:"candidates,omitempty"`
	Exact       []string `json:"exact"`
	Partial     []string `json:"partial"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type ListPackageParams struct {
	Path string `json:"path"`
}

type ListPackageResponse struct {
	Path    string   `json:"path"`
	Found   bool     `json:"found"`
	Classes []string `json:"classes"`
}

func (s *Server) handleFindPackage(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params FindPackageParams
	if err := unmarshalArguments(req, &params); err != nil {
		return createErrorResponse(toolFindPackage, err)
	}

	return s.recoverFromPanic(toolFindPackage, func() (*mcp.CallToolResult, error) {
		resp, err := s.findPackage(ctx, params.Word)
		if err != nil {
			return nil, err
		}
		return createJSONResponse(resp)
	})
}

func (s *Server) findPackage(ctx context.Context, word string) (*FindPackageResponse, error) {
	res, err := s.resolver.Resolve(ctx, word)
	resp := &FindPackageResponse{Word: word, Exact: []string{}, Partial: []string{}}

	var notFound *as3errors.NotFoundError
	switch {
	case errors.As(err, &notFound):
		resp.Status = StatusNotFound
		resp.Suggestions = notFound.Suggestions
		return resp, nil
	case err != nil:
		return nil, err
	}

	for _, c := range res.Candidates {
		if c != classpath.Separator {
			resp.Candidates = append(resp.Candidates, c)
		}
	}
	resp.Exact = append(resp.Exact, res.Results.Exact...)
	resp.Partial = append(resp.Partial, res.Results.Partial...)
	if res.Kind == resolve.Definitive {
		resp.Status = StatusFound
		resp.Path = res.Path
	} else {
		resp.Status = StatusAmbiguous
	}

	s.diagnosticLogger.Printf("find_package %q: %s (%d candidates)", word, resp.Status, len(resp.Candidates))
	return resp, nil
}

func (s *Server) handleListPackage(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params ListPackageParams
	if err := unmarshalArguments(req, &params); err != nil {
		return createErrorResponse(toolListPackage, err)
	}
	if params.Path == "" {
		return createErrorResponse(toolListPackage, errors.New("path is required"))
	}

	return s.recoverFromPanic(toolListPackage, func() (*mcp.CallToolResult, error) {
		classes, found := s.lister.ListPackage(params.Path)
		if classes == nil {
			classes = []string{}
		}
		return createJSONResponse(&ListPackageResponse{Path: params.Path, Found: found, Classes: classes})
	})
}

func unmarshalArguments(req *mcp.CallToolRequest, v interface{}) error {
	if req == nil || req.Params == nil || len(req.Params.Arguments) == 0 {
		return nil
	}
	if err := json.Unmarshal(req.Params.Arguments, v); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}
