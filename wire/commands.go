package wire

import "github.com/gogpu/glbatch/resource"

// Field names and command names below are the executor's vocabulary and
// must not change, including the "attachement" spelling and the snake
// case "blend_func_separate" command.

// --------------------------------------------------------------------------
// Render state
// --------------------------------------------------------------------------

// Viewport sets the viewport rectangle.
type Viewport struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (Viewport) Name() string { return "viewport" }

// Capabilities is the flag set shared by Enable and Disable.
type Capabilities struct {
	Blend                 bool `json:"blend"`
	CullFace              bool `json:"cull_face"`
	DepthTest             bool `json:"depth_test"`
	Dither                bool `json:"dither"`
	PolygonOffsetFill     bool `json:"polygon_offset_fill"`
	SampleAlphaToCoverage bool `json:"sample_alpha_to_coverage"`
	SampleCoverage        bool `json:"sample_coverage"`
	ScissorTest           bool `json:"scissor_test"`
	StencilTest           bool `json:"stencil_test"`
	RasterizerDiscard     bool `json:"rasterizer_discard"`
}

// Enable turns on every capability set to true.
type Enable struct {
	Capabilities
}

func (Enable) Name() string { return "enable" }

// Disable turns off every capability set to true.
type Disable struct {
	Capabilities
}

func (Disable) Name() string { return "disable" }

// ClearColor sets the color used by Clear.
type ClearColor struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

func (ClearColor) Name() string { return "clearColor" }

// Clear clears the selected buffers of the bound framebuffer.
type Clear struct {
	Color   bool `json:"color"`
	Depth   bool `json:"depth"`
	Stencil bool `json:"stencil"`
}

func (Clear) Name() string { return "clear" }

type FrontFace struct {
	Mode string `json:"mode"`
}

func (FrontFace) Name() string { return "frontFace" }

type CullFace struct {
	Mode string `json:"mode"`
}

func (CullFace) Name() string { return "cullFace" }

type DepthFunc struct {
	Func string `json:"func"`
}

func (DepthFunc) Name() string { return "depthFunc" }

type DepthMask struct {
	Flag bool `json:"flag"`
}

func (DepthMask) Name() string { return "depthMask" }

type DepthRange struct {
	ZNear float32 `json:"z_near"`
	ZFar  float32 `json:"z_far"`
}

func (DepthRange) Name() string { return "depthRange" }

// --------------------------------------------------------------------------
// Blending
// --------------------------------------------------------------------------

type BlendColor struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

func (BlendColor) Name() string { return "blendColor" }

type BlendEquation struct {
	Mode string `json:"mode"`
}

func (BlendEquation) Name() string { return "blendEquation" }

type BlendEquationSeparate struct {
	ModeRGB   string `json:"mode_rgb"`
	ModeAlpha string `json:"mode_alpha"`
}

func (BlendEquationSeparate) Name() string { return "blendEquationSeparate" }

type BlendFunc struct {
	SFactor string `json:"s_factor"`
	DFactor string `json:"d_factor"`
}

func (BlendFunc) Name() string { return "blendFunc" }

type BlendFuncSeparate struct {
	SrcRGB   string `json:"src_rgb"`
	DstRGB   string `json:"dst_rgb"`
	SrcAlpha string `json:"src_alpha"`
	DstAlpha string `json:"dst_alpha"`
}

func (BlendFuncSeparate) Name() string { return "blend_func_separate" }

// --------------------------------------------------------------------------
// Textures
// --------------------------------------------------------------------------

type CreateTexture struct {
	Resource resource.Handle `json:"resource"`
}

func (CreateTexture) Name() string { return "createTexture" }

type BindTexture struct {
	Target  string          `json:"target"`
	Texture resource.Handle `json:"texture"`
}

func (BindTexture) Name() string { return "bindTexture" }

// ActiveTexture selects texture unit TEXTURE0+Texture.
type ActiveTexture struct {
	Texture int `json:"texture"`
}

func (ActiveTexture) Name() string { return "activeTexture" }

type GenerateMipmap struct {
	Target string `json:"target"`
}

func (GenerateMipmap) Name() string { return "generateMipmap" }

// TexImage2D uploads one image level. A nil Buffer allocates storage only.
type TexImage2D struct {
	Target         string          `json:"target"`
	Level          int             `json:"level"`
	InternalFormat string          `json:"internal_format"`
	Width          int             `json:"width"`
	Height         int             `json:"height"`
	Border         int             `json:"border"`
	Format         string          `json:"format"`
	DataType       string          `json:"data_type"`
	Buffer         *BufferMetadata `json:"buffer_metadata,omitempty"`
}

func (TexImage2D) Name() string                { return "texImage2D" }
func (c TexImage2D) Payload() *BufferMetadata { return c.Buffer }

type TexStorage2D struct {
	Target         string `json:"target"`
	Levels         int    `json:"levels"`
	InternalFormat string `json:"internal_format"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

func (TexStorage2D) Name() string { return "texStorage2D" }

type TexImage3D struct {
	Target         string          `json:"target"`
	Level          int             `json:"level"`
	InternalFormat string          `json:"internal_format"`
	Width          int             `json:"width"`
	Height         int             `json:"height"`
	Depth          int             `json:"depth"`
	Border         int             `json:"border"`
	Format         string          `json:"format"`
	DataType       string          `json:"data_type"`
	Buffer         *BufferMetadata `json:"buffer_metadata,omitempty"`
}

func (TexImage3D) Name() string                { return "texImage3D" }
func (c TexImage3D) Payload() *BufferMetadata { return c.Buffer }

type TexStorage3D struct {
	Target         string `json:"target"`
	Levels         int    `json:"levels"`
	InternalFormat string `json:"internal_format"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Depth          int    `json:"depth"`
}

func (TexStorage3D) Name() string { return "texStorage3D" }

type TexParameterInt struct {
	Target string `json:"target"`
	PName  string `json:"pname"`
	Param  int    `json:"param"`
}

func (TexParameterInt) Name() string { return "texParameteri" }

type TexParameterFloat struct {
	Target string  `json:"target"`
	PName  string  `json:"pname"`
	Param  float32 `json:"param"`
}

func (TexParameterFloat) Name() string { return "texParameterf" }

// TexParameterEnum carries a symbolic parameter such as LINEAR or REPEAT.
type TexParameterEnum struct {
	Target string `json:"target"`
	PName  string `json:"pname"`
	Param  string `json:"param"`
}

func (TexParameterEnum) Name() string { return "texParameter_str" }

// PixelStore sets a pixel storage mode. Param is a name only for
// UNPACK_COLORSPACE_CONVERSION_WEBGL.
type PixelStore struct {
	PName string    `json:"pname"`
	Param IntOrName `json:"param"`
}

func (PixelStore) Name() string { return "pixelStorei" }

// --------------------------------------------------------------------------
// Shaders and programs
// --------------------------------------------------------------------------

type CreateShader struct {
	Resource resource.Handle `json:"resource"`
	Type     string          `json:"type"`
}

func (CreateShader) Name() string { return "createShader" }

type ShaderSource struct {
	Shader resource.Handle `json:"shader"`
	Source string          `json:"source"`
}

func (ShaderSource) Name() string { return "shaderSource" }

type CompileShader struct {
	Shader resource.Handle `json:"shader"`
}

func (CompileShader) Name() string { return "compileShader" }

type CreateProgram struct {
	Resource resource.Handle `json:"resource"`
}

func (CreateProgram) Name() string { return "createProgram" }

type AttachShader struct {
	Program resource.Handle `json:"program"`
	Shader  resource.Handle `json:"shader"`
}

func (AttachShader) Name() string { return "attachShader" }

type BindAttribLocation struct {
	Program resource.Handle `json:"program"`
	Index   int             `json:"index"`
	Attrib  string          `json:"name"`
}

func (BindAttribLocation) Name() string { return "bindAttribLocation" }

type LinkProgram struct {
	Program resource.Handle `json:"program"`
}

func (LinkProgram) Name() string { return "linkProgram" }

type UseProgram struct {
	Program resource.Handle `json:"program"`
}

func (UseProgram) Name() string { return "useProgram" }

// Uniform sets a uniform of the bound program from a payload whose last
// dimension is the vector size.
type Uniform struct {
	Uniform string          `json:"name"`
	Buffer  *BufferMetadata `json:"buffer_metadata"`
}

func (Uniform) Name() string                { return "uniform" }
func (c Uniform) Payload() *BufferMetadata { return c.Buffer }

// UniformMatrix sets a matrix uniform; the last two dimensions give the
// matrix size.
type UniformMatrix struct {
	Uniform string          `json:"name"`
	Buffer  *BufferMetadata `json:"buffer_metadata"`
}

func (UniformMatrix) Name() string                { return "uniformMatrix" }
func (c UniformMatrix) Payload() *BufferMetadata { return c.Buffer }

type UniformBlockBinding struct {
	Program      resource.Handle `json:"program"`
	BlockName    string          `json:"uniform_block_name"`
	BlockBinding int             `json:"uniform_block_binding"`
}

func (UniformBlockBinding) Name() string { return "uniformBlockBinding" }

// --------------------------------------------------------------------------
// Buffers
// --------------------------------------------------------------------------

type CreateBuffer struct {
	Resource resource.Handle `json:"resource"`
}

func (CreateBuffer) Name() string { return "createBuffer" }

type BindBuffer struct {
	Target string          `json:"target"`
	Buffer resource.Handle `json:"buffer"`
}

func (BindBuffer) Name() string { return "bindBuffer" }

type BindBufferBase struct {
	Target string          `json:"target"`
	Index  int             `json:"index"`
	Buffer resource.Handle `json:"buffer"`
}

func (BindBufferBase) Name() string { return "bindBufferBase" }

// BufferData fills the buffer bound to Target. A nil Buffer allocates an
// empty store.
type BufferData struct {
	Target     string          `json:"target"`
	Usage      string          `json:"usage"`
	UpdateInfo bool            `json:"update_info"`
	Buffer     *BufferMetadata `json:"buffer_metadata,omitempty"`
}

func (BufferData) Name() string                { return "bufferData" }
func (c BufferData) Payload() *BufferMetadata { return c.Buffer }

// CreateUniformBuffer creates a buffer sized for a uniform block of
// Program. Buffer is the handle of the new buffer.
type CreateUniformBuffer struct {
	Buffer    resource.Handle `json:"buffer"`
	Program   resource.Handle `json:"program"`
	BlockName string          `json:"block_name"`
	Usage     string          `json:"usage"`
}

func (CreateUniformBuffer) Name() string { return "createUniformBuffer" }

type BufferSubData struct {
	Target        string          `json:"target"`
	DstByteOffset int             `json:"dst_byte_offset"`
	SrcOffset     int             `json:"src_offset"`
	Buffer        *BufferMetadata `json:"buffer_metadata,omitempty"`
}

func (BufferSubData) Name() string                { return "bufferSubData" }
func (c BufferSubData) Payload() *BufferMetadata { return c.Buffer }

// BufferSubDataUniform writes at the offset of a named uniform within the
// uniform block backing the bound buffer.
type BufferSubDataUniform struct {
	Target    string          `json:"target"`
	Uniform   string          `json:"dst_byte_offset"`
	SrcOffset int             `json:"src_offset"`
	Buffer    *BufferMetadata `json:"buffer_metadata,omitempty"`
}

func (BufferSubDataUniform) Name() string                { return "bufferSubDataStr" }
func (c BufferSubDataUniform) Payload() *BufferMetadata { return c.Buffer }

// --------------------------------------------------------------------------
// Vertex arrays
// --------------------------------------------------------------------------

type CreateVertexArray struct {
	Resource resource.Handle `json:"resource"`
}

func (CreateVertexArray) Name() string { return "createVertexArray" }

type BindVertexArray struct {
	VertexArray resource.Handle `json:"vertex_array"`
}

func (BindVertexArray) Name() string { return "bindVertexArray" }

type VertexAttribPointer struct {
	Index      IntOrName `json:"index"`
	Size       int       `json:"size"`
	Type       string    `json:"type"`
	Normalized bool      `json:"normalized"`
	Stride     int       `json:"stride"`
	Offset     int       `json:"offset"`
}

func (VertexAttribPointer) Name() string { return "vertexAttribPointer" }

type VertexAttribIPointer struct {
	Index  IntOrName `json:"index"`
	Size   int       `json:"size"`
	Type   string    `json:"type"`
	Stride int       `json:"stride"`
	Offset int       `json:"offset"`
}

func (VertexAttribIPointer) Name() string { return "vertexAttribIPointer" }

type EnableVertexAttribArray struct {
	Index IntOrName `json:"index"`
}

func (EnableVertexAttribArray) Name() string { return "enableVertexAttribArray" }

type DisableVertexAttribArray struct {
	Index IntOrName `json:"index"`
}

func (DisableVertexAttribArray) Name() string { return "disableVertexAttribArray" }

// VertexAttrib sets a constant float attribute of 1 to 4 components.
type VertexAttrib struct {
	Index  IntOrName       `json:"index"`
	Buffer *BufferMetadata `json:"buffer_metadata"`
}

func (VertexAttrib) Name() string                { return "vertexAttrib[1234]fv" }
func (c VertexAttrib) Payload() *BufferMetadata { return c.Buffer }

// VertexAttribI sets a constant 4-component integer attribute.
type VertexAttribI struct {
	Index  IntOrName       `json:"index"`
	Buffer *BufferMetadata `json:"buffer_metadata"`
}

func (VertexAttribI) Name() string                { return "vertexAttribI4[u]iv" }
func (c VertexAttribI) Payload() *BufferMetadata { return c.Buffer }

// --------------------------------------------------------------------------
// Draws
// --------------------------------------------------------------------------

type DrawArrays struct {
	Mode  string `json:"mode"`
	First int    `json:"first"`
	Count int    `json:"count"`
}

func (DrawArrays) Name() string { return "drawArrays" }

type DrawArraysInstanced struct {
	Mode          string `json:"mode"`
	First         int    `json:"first"`
	Count         int    `json:"count"`
	InstanceCount int    `json:"instance_count"`
}

func (DrawArraysInstanced) Name() string { return "drawArraysInstanced" }

type DrawElements struct {
	Mode   string `json:"mode"`
	Count  int    `json:"count"`
	Type   string `json:"type"`
	Offset int    `json:"offset"`
}

func (DrawElements) Name() string { return "drawElements" }

type DrawElementsInstanced struct {
	Mode          string `json:"mode"`
	Count         int    `json:"count"`
	Type          string `json:"type"`
	Offset        int    `json:"offset"`
	InstanceCount int    `json:"instance_count"`
}

func (DrawElementsInstanced) Name() string { return "drawElementsInstanced" }

// --------------------------------------------------------------------------
// Framebuffers
// --------------------------------------------------------------------------

type CreateFramebuffer struct {
	Resource resource.Handle `json:"resource"`
}

func (CreateFramebuffer) Name() string { return "createFramebuffer" }

type BindFramebuffer struct {
	Target      string          `json:"target"`
	Framebuffer resource.Handle `json:"framebuffer"`
}

func (BindFramebuffer) Name() string { return "bindFramebuffer" }

type FramebufferTexture2D struct {
	Target     string          `json:"target"`
	Attachment string          `json:"attachement"`
	TexTarget  string          `json:"textarget"`
	Texture    resource.Handle `json:"texture"`
	Level      int             `json:"level"`
}

func (FramebufferTexture2D) Name() string { return "framebufferTexture2D" }

type DrawBuffers struct {
	Buffers []string `json:"buffers"`
}

func (DrawBuffers) Name() string { return "drawBuffers" }

// decoders maps each command name to the function decoding its record.
var decoders = map[string]func([]byte) (Command, error){
	"viewport":                 decodeAs[Viewport],
	"enable":                   decodeAs[Enable],
	"disable":                  decodeAs[Disable],
	"clearColor":               decodeAs[ClearColor],
	"clear":                    decodeAs[Clear],
	"frontFace":                decodeAs[FrontFace],
	"cullFace":                 decodeAs[CullFace],
	"depthFunc":                decodeAs[DepthFunc],
	"depthMask":                decodeAs[DepthMask],
	"depthRange":               decodeAs[DepthRange],
	"blendColor":               decodeAs[BlendColor],
	"blendEquation":            decodeAs[BlendEquation],
	"blendEquationSeparate":    decodeAs[BlendEquationSeparate],
	"blendFunc":                decodeAs[BlendFunc],
	"blend_func_separate":      decodeAs[BlendFuncSeparate],
	"createTexture":            decodeAs[CreateTexture],
	"bindTexture":              decodeAs[BindTexture],
	"activeTexture":            decodeAs[ActiveTexture],
	"generateMipmap":           decodeAs[GenerateMipmap],
	"texImage2D":               decodeAs[TexImage2D],
	"texStorage2D":             decodeAs[TexStorage2D],
	"texImage3D":               decodeAs[TexImage3D],
	"texStorage3D":             decodeAs[TexStorage3D],
	"texParameteri":            decodeAs[TexParameterInt],
	"texParameterf":            decodeAs[TexParameterFloat],
	"texParameter_str":         decodeAs[TexParameterEnum],
	"pixelStorei":              decodeAs[PixelStore],
	"createShader":             decodeAs[CreateShader],
	"shaderSource":             decodeAs[ShaderSource],
	"compileShader":            decodeAs[CompileShader],
	"createProgram":            decodeAs[CreateProgram],
	"attachShader":             decodeAs[AttachShader],
	"bindAttribLocation":       decodeAs[BindAttribLocation],
	"linkProgram":              decodeAs[LinkProgram],
	"useProgram":               decodeAs[UseProgram],
	"uniform":                  decodeAs[Uniform],
	"uniformMatrix":            decodeAs[UniformMatrix],
	"uniformBlockBinding":      decodeAs[UniformBlockBinding],
	"createBuffer":             decodeAs[CreateBuffer],
	"bindBuffer":               decodeAs[BindBuffer],
	"bindBufferBase":           decodeAs[BindBufferBase],
	"bufferData":               decodeAs[BufferData],
	"createUniformBuffer":      decodeAs[CreateUniformBuffer],
	"bufferSubData":            decodeAs[BufferSubData],
	"bufferSubDataStr":         decodeAs[BufferSubDataUniform],
	"createVertexArray":        decodeAs[CreateVertexArray],
	"bindVertexArray":          decodeAs[BindVertexArray],
	"vertexAttribPointer":      decodeAs[VertexAttribPointer],
	"vertexAttribIPointer":     decodeAs[VertexAttribIPointer],
	"enableVertexAttribArray":  decodeAs[EnableVertexAttribArray],
	"disableVertexAttribArray": decodeAs[DisableVertexAttribArray],
	"vertexAttrib[1234]fv":     decodeAs[VertexAttrib],
	"vertexAttribI4[u]iv":      decodeAs[VertexAttribI],
	"drawArrays":               decodeAs[DrawArrays],
	"drawArraysInstanced":      decodeAs[DrawArraysInstanced],
	"drawElements":             decodeAs[DrawElements],
	"drawElementsInstanced":    decodeAs[DrawElementsInstanced],
	"createFramebuffer":        decodeAs[CreateFramebuffer],
	"bindFramebuffer":          decodeAs[BindFramebuffer],
	"framebufferTexture2D":     decodeAs[FramebufferTexture2D],
	"drawBuffers":              decodeAs[DrawBuffers],
}
