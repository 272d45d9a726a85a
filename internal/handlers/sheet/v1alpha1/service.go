package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "charsheet.sheet.v1alpha1.SheetService"

// SheetServiceServer is the server API for the sheet service
type SheetServiceServer interface {
	CreateCharacter(ctx context.Context, req *CreateCharacterRequest) (*SheetResponse, error)
	ImportCharacter(ctx context.Context, req *ImportCharacterRequest) (*SheetResponse, error)
	ListCharacters(ctx context.Context, req *ListCharactersRequest) (*ListCharactersResponse, error)
	DeleteCharacter(ctx context.Context, req *DeleteCharacterRequest) (*DeleteCharacterResponse, error)
	GetSheet(ctx context.Context, req *GetSheetRequest) (*GetSheetResponse, error)
	SaveCharacter(ctx context.Context, req *SaveCharacterRequest) (*SheetResponse, error)
	UpdateStat(ctx context.Context, req *UpdateStatRequest) (*SheetResponse, error)
	UpdateSkill(ctx context.Context, req *UpdateSkillRequest) (*SheetResponse, error)
	SetNumber(ctx context.Context, req *SetNumberRequest) (*SheetResponse, error)
	SetText(ctx context.Context, req *SetTextRequest) (*SheetResponse, error)
	UpdateIdentity(ctx context.Context, req *UpdateIdentityRequest) (*SheetResponse, error)
	UpdateCoin(ctx context.Context, req *UpdateCoinRequest) (*SheetResponse, error)
	UpdateAttunement(ctx context.Context, req *UpdateAttunementRequest) (*SheetResponse, error)
	UpdateDeathSaves(ctx context.Context, req *UpdateDeathSavesRequest) (*SheetResponse, error)
	ToggleSpellSlot(ctx context.Context, req *ToggleSpellSlotRequest) (*SheetResponse, error)
	ConfigureSpellSlots(ctx context.Context, req *ConfigureSpellSlotsRequest) (*SheetResponse, error)
	UpsertEntry(ctx context.Context, req *UpsertEntryRequest) (*SheetResponse, error)
	DeleteEntry(ctx context.Context, req *DeleteEntryRequest) (*SheetResponse, error)
	AddLanguage(ctx context.Context, req *AddLanguageRequest) (*SheetResponse, error)
	RollCheck(ctx context.Context, req *RollCheckRequest) (*RollResponse, error)
	Roll(ctx context.Context, req *RollRequest) (*RollResponse, error)
	GetRollLog(ctx context.Context, req *GetRollLogRequest) (*GetRollLogResponse, error)
	ClearRollLog(ctx context.Context, req *ClearRollLogRequest) (*ClearRollLogResponse, error)
	ResolveLinks(ctx context.Context, req *ResolveLinksRequest) (*ResolveLinksResponse, error)
	LookupSpell(ctx context.Context, req *LookupSpellRequest) (*LookupSpellResponse, error)
	LookupWeapon(ctx context.Context, req *LookupWeaponRequest) (*LookupWeaponResponse, error)
}

// SheetServiceDesc describes the sheet service for grpc.Server. Messages are
// plain structs encoded with the JSON codec.
var SheetServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SheetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("CreateCharacter", SheetServiceServer.CreateCharacter),
		unaryMethod("ImportCharacter", SheetServiceServer.ImportCharacter),
		unaryMethod("ListCharacters", SheetServiceServer.ListCharacters),
		unaryMethod("DeleteCharacter", SheetServiceServer.DeleteCharacter),
		unaryMethod("GetSheet", SheetServiceServer.GetSheet),
		unaryMethod("SaveCharacter", SheetServiceServer.SaveCharacter),
		unaryMethod("UpdateStat", SheetServiceServer.UpdateStat),
		unaryMethod("UpdateSkill", SheetServiceServer.UpdateSkill),
		unaryMethod("SetNumber", SheetServiceServer.SetNumber),
		unaryMethod("SetText", SheetServiceServer.SetText),
		unaryMethod("UpdateIdentity", SheetServiceServer.UpdateIdentity),
		unaryMethod("UpdateCoin", SheetServiceServer.UpdateCoin),
		unaryMethod("UpdateAttunement", SheetServiceServer.UpdateAttunement),
		unaryMethod("UpdateDeathSaves", SheetServiceServer.UpdateDeathSaves),
		unaryMethod("ToggleSpellSlot", SheetServiceServer.ToggleSpellSlot),
		unaryMethod("ConfigureSpellSlots", SheetServiceServer.ConfigureSpellSlots),
		unaryMethod("UpsertEntry", SheetServiceServer.UpsertEntry),
		unaryMethod("DeleteEntry", SheetServiceServer.DeleteEntry),
		unaryMethod("AddLanguage", SheetServiceServer.AddLanguage),
		unaryMethod("RollCheck", SheetServiceServer.RollCheck),
		unaryMethod("Roll", SheetServiceServer.Roll),
		unaryMethod("GetRollLog", SheetServiceServer.GetRollLog),
		unaryMethod("ClearRollLog", SheetServiceServer.ClearRollLog),
		unaryMethod("ResolveLinks", SheetServiceServer.ResolveLinks),
		unaryMethod("LookupSpell", SheetServiceServer.LookupSpell),
		unaryMethod("LookupWeapon", SheetServiceServer.LookupWeapon),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "charsheet/sheet/v1alpha1/service.go",
}

// RegisterSheetServiceServer registers srv on s
func RegisterSheetServiceServer(s grpc.ServiceRegistrar, srv SheetServiceServer) {
	s.RegisterService(&SheetServiceDesc, srv)
}

// FullMethod returns the gRPC method path for an RPC name
func FullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

func unaryMethod[Req, Resp any](
	name string,
	call func(SheetServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(SheetServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(SheetServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// SheetServiceClient calls the sheet service. Every call is sent with the
// JSON content subtype.
type SheetServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSheetServiceClient creates a client over cc
func NewSheetServiceClient(cc grpc.ClientConnInterface) *SheetServiceClient {
	return &SheetServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, name string, req any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(name), req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SheetServiceClient) CreateCharacter(ctx context.Context, req *CreateCharacterRequest, opts ...grpc.CallOption) (*SheetResponse, error) {
	return invoke[SheetResponse](ctx, c.cc, "CreateCharacter", req, opts)
}

func (c *SheetServiceClient) ImportCharacter(ctx context.Context, req *ImportCharacterRequest, opts ...grpc.CallOption) (*SheetResponse, error) {
	return invoke[SheetResponse](ctx, c.cc, "ImportCharacter", req, opts)
}

func (c *SheetServiceClient) ListCharacters(ctx context.Context, req *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error) {
	return invoke[ListCharactersResponse](ctx, c.cc, "ListCharacters", req, opts)
}

func (c *SheetServiceClient) DeleteCharacter(ctx context.Context, req *DeleteCharacterRequest, opts ...grpc.CallOption) (*DeleteCharacterResponse, error) {
	return invoke[DeleteCharacterResponse](ctx, c.cc, "DeleteCharacter", req, opts)
}

func (c *SheetServiceClient) GetSheet(ctx context.Context, req *GetSheetRequest, opts ...grpc.CallOption) (*GetSheetResponse, error) {
	return invoke[GetSheetResponse](ctx, c.cc, "GetSheet", req, opts)
}

func (c *SheetServiceClient) SaveCharacter(ctx context.Context, req *SaveCharacterRequest, opts ...grpc.CallOption) (*SheetResponse, error) {
	return invoke[SheetResponse](ctx, c.cc, "SaveCharacter", req, opts)
}

func (c *SheetServiceClient) UpdateStat(ctx context.Context, req *UpdateStatRequest, opts ...grpc.CallOption) (*SheetResponse, error) {
	return invoke[SheetResponse](ctx, c.cc, "UpdateStat", req, opts)
}

func (c *SheetServiceClient) UpdateSkill(ctx context.Context, req *UpdateSkillRequest, opts ...grpc.CallOption) (*SheetResponse, error) {
	return invoke[SheetResponse](ctx, c.cc, "UpdateSkill", req, opts)
}

func (c *SheetServiceClient) SetNumber(ctx context.Context, req *SetNumberRequest, opts ...grpc.CallOption) (*SheetResponse, error) {
	return invoke[SheetResponse](ctx, c.cc, "SetNumber", req, opts)
}

func (c *SheetServiceClient) SetText(ctx context.Context, req *SetTextRequest, opts ...grpc.CallOption) (*SheetResponse, error) {
	return invoke[SheetResponse](ctx, c.cc, "SetText", req, opts)
}

func (c *SheetServiceClient) UpdateIdentity(ctx context.Context, req *UpdateIdentityRequest, opts ...grpc.CallOption) (*SheetResponse, error) {
	return invoke[SheetResponse](ctx, c.cc, "UpdateIdentity", req, opts)
}

func (c *SheetServiceClient) UpdateCoin(ctx context.Context, req *UpdateCoinRequest, opts ...grpc.CallOption) (*SheetResponse, error) {
	return invoke[SheetResponse](ctx, c.cc, "UpdateCoin", req, opts)
}

func (c *SheetServiceClient) UpdateAttunement(ctx context.Context, req *UpdateAttunementRequest, opts ...grpc.CallOption) (*SheetResponse, error) {
	return invoke[SheetResponse](ctx, c.cc, "UpdateAttunement", req, opts)
}

func (c *SheetServiceClient) UpdateDeathSaves(ctx context.Context, req *UpdateDeathSavesRequest, opts ...grpc.CallOption) (*SheetResponse, error) {
	return invoke[SheetResponse](ctx, c.cc, "UpdateDeathSaves", req, opts)
}

func (c *SheetServiceClient) ToggleSpellSlot(ctx context.Context, req *ToggleSpellSlotRequest, opts ...grpc.CallOption) (*SheetResponse, error) {
	return invoke[SheetResponse](ctx, c.cc, "ToggleSpellSlot", req, opts)
}

func (c *SheetServiceClient) ConfigureSpellSlots(ctx context.Context, req *ConfigureSpellSlotsRequest, opts ...grpc.CallOption) (*SheetResponse, error) {
	return invoke[SheetResponse](ctx, c.cc, "ConfigureSpellSlots", req, opts)
}

func (c *SheetServiceClient) UpsertEntry(ctx context.Context, req *UpsertEntryRequest, opts ...grpc.CallOption) (*SheetResponse, error) {
	return invoke[SheetResponse](ctx, c.cc, "UpsertEntry", req, opts)
}

func (c *SheetServiceClient) DeleteEntry(ctx context.Context, req *DeleteEntryRequest, opts ...grpc.CallOption) (*SheetResponse, error) {
	return invoke[SheetResponse](ctx, c.cc, "DeleteEntry", req, opts)
}

func (c *SheetServiceClient) AddLanguage(ctx context.Context, req *AddLanguageRequest, opts ...grpc.CallOption) (*SheetResponse, error) {
	return invoke[SheetResponse](ctx, c.cc, "AddLanguage", req, opts)
}

func (c *SheetServiceClient) RollCheck(ctx context.Context, req *RollCheckRequest, opts ...grpc.CallOption) (*RollResponse, error) {
	return invoke[RollResponse](ctx, c.cc, "RollCheck", req, opts)
}

func (c *SheetServiceClient) Roll(ctx context.Context, req *RollRequest, opts ...grpc.CallOption) (*RollResponse, error) {
	return invoke[RollResponse](ctx, c.cc, "Roll", req, opts)
}

func (c *SheetServiceClient) GetRollLog(ctx context.Context, req *GetRollLogRequest, opts ...grpc.CallOption) (*GetRollLogResponse, error) {
	return invoke[GetRollLogResponse](ctx, c.cc, "GetRollLog", req, opts)
}

func (c *SheetServiceClient) ClearRollLog(ctx context.Context, req *ClearRollLogRequest, opts ...grpc.CallOption) (*ClearRollLogResponse, error) {
	return invoke[ClearRollLogResponse](ctx, c.cc, "ClearRollLog", req, opts)
}

func (c *SheetServiceClient) ResolveLinks(ctx context.Context, req *ResolveLinksRequest, opts ...grpc.CallOption) (*ResolveLinksResponse, error) {
	return invoke[ResolveLinksResponse](ctx, c.cc, "ResolveLinks", req, opts)
}

func (c *SheetServiceClient) LookupSpell(ctx context.Context, req *LookupSpellRequest, opts ...grpc.CallOption) (*LookupSpellResponse, error) {
	return invoke[LookupSpellResponse](ctx, c.cc, "LookupSpell", req, opts)
}

func (c *SheetServiceClient) LookupWeapon(ctx context.Context, req *LookupWeaponRequest, opts ...grpc.CallOption) (*LookupWeaponResponse, error) {
	return invoke[LookupWeaponResponse](ctx, c.cc, "LookupWeapon", req, opts)
}
