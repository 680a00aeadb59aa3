// Package v1alpha1 handles the talent grpc service interface
package v1alpha1

import (
	"context"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/foolchen/lifeRestart/internal/entities"
	"github.com/foolchen/lifeRestart/internal/errors"
	"github.com/foolchen/lifeRestart/internal/orchestrators/draw"
	"github.com/foolchen/lifeRestart/internal/orchestrators/replacement"
	"github.com/foolchen/lifeRestart/internal/services/talent"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	DrawService        draw.Service
	ReplacementService replacement.Service
	TalentService      talent.Service
	// DefaultVariant applies to draw requests without a variant field
	DefaultVariant entities.Variant
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.DrawService == nil {
		vb.RequiredField("DrawService")
	}
	if c.ReplacementService == nil {
		vb.RequiredField("ReplacementService")
	}
	if c.TalentService == nil {
		vb.RequiredField("TalentService")
	}
	if _, err := entities.ParseVariant(string(c.DefaultVariant)); err != nil {
		vb.Field("DefaultVariant", err.Error())
	}
	return vb.Build()
}

var _ TalentServiceServer = (*Handler)(nil)

// Handler implements the talent gRPC service
type Handler struct {
	drawService        draw.Service
	replacementService replacement.Service
	talentService      talent.Service
	defaultVariant     entities.Variant
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		drawService:        cfg.DrawService,
		replacementService: cfg.ReplacementService,
		talentService:      cfg.TalentService,
		defaultVariant:     cfg.DefaultVariant,
	}, nil
}

// DrawTalents draws a hand of ten talents.
//
// Request fields: include_id (optional), times, achievement, variant. A
// missing variant falls back to the configured default.
func (h *Handler) DrawTalents(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	includeID, err := optionalInt(req, "include_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	times, err := intField(req, "times")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	achievement, err := intField(req, "achievement")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if times < 0 || achievement < 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("times and achievement must not be negative"))
	}
	variant := h.defaultVariant
	if v, ok := req.GetFields()["variant"]; ok {
		variant, err = entities.ParseVariant(v.GetStringValue())
		if err != nil {
			return nil, errors.ToGRPCError(errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid variant"))
		}
	}

	output, err := h.drawService.DrawTalents(ctx, &draw.DrawTalentsInput{
		IncludeID:   includeID,
		Times:       times,
		Achievement: achievement,
		Variant:     variant,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	talents := make([]any, 0, len(output.Draw.Talents))
	for _, s := range output.Draw.Talents {
		talents = append(talents, summaryValue(s))
	}

	resp := map[string]any{
		"draw_id":  output.Draw.ID,
		"variant":  output.Draw.Variant.String(),
		"talents":  talents,
		"injected": ints(output.Injected),
	}
	if output.Draw.Included != nil {
		resp["included"] = *output.Draw.Included
	}

	out, err := toStruct(resp)
	return out, errors.ToGRPCError(err)
}

// ReplaceTalents resolves replacement chains for the held talent_ids
func (h *Handler) ReplaceTalents(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	ids, err := intList(req, "talent_ids")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.replacementService.ReplaceTalents(ctx, &replacement.ReplaceTalentsInput{
		TalentIDs: ids,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	replacements := make(map[string]any, len(output.Replacements))
	chains := make(map[string]any, len(output.Chains))
	for original, final := range output.Replacements {
		key := strconv.Itoa(original)
		replacements[key] = final
		chains[key] = ints(output.Chains[original])
	}

	out, err := toStruct(map[string]any{
		"replacements": replacements,
		"chains":       chains,
	})
	return out, errors.ToGRPCError(err)
}

// GetTalent returns one catalog definition
func (h *Handler) GetTalent(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := optionalInt(req, "talent_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if id == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("talent_id is required"))
	}

	def, err := h.talentService.Get(*id)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := toStruct(definitionValue(def))
	return out, errors.ToGRPCError(err)
}

// EvaluateTalents applies talent_ids to a character property and reports
// which ones trigger plus their combined status allocation bonus.
func (h *Handler) EvaluateTalents(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	ids, err := intList(req, "talent_ids")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	property := entities.Property(req.GetFields()["property"].GetStructValue().AsMap())

	results := make([]any, 0, len(ids))
	for _, id := range ids {
		outcome, err := h.talentService.Do(id, property)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}

		result := map[string]any{"id": id, "triggered": outcome != nil}
		if outcome != nil {
			result["name"] = outcome.Name
			result["grade"] = int(outcome.Grade)
			if effect := effectValue(outcome.Effect); effect != nil {
				result["effect"] = effect
			}
		}
		results = append(results, result)
	}

	addition, err := h.talentService.AllocationAddition(ids...)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := toStruct(map[string]any{
		"results":             results,
		"allocation_addition": addition,
	})
	return out, errors.ToGRPCError(err)
}
