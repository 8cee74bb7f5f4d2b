package exporter

// Built-in exporter names.
const (
	XCode        = "xcode"
	Android      = "android"
	Emscripten   = "emscripten"
	Linux        = "linux"
	Tizen        = "tizen"
	VisualStudio = "visualstudio"
)

const linuxMakefile = `# {{.DisplayName}} makefile generated by koremake
TARGET = {{.Name}}
CXXFLAGS = {{if .Debug}}-g -O0{{else}}-O2{{end}}{{range .Defines}} -D{{.}}{{end}}{{range .Includes}} -I"{{.}}"{{end}}
LDFLAGS = -lpthread -lGL -lX11 -lasound -ldl
OBJECTS ={{range $i, $f := .Sources}} o{{$i}}.o{{end}}

$(TARGET): $(OBJECTS)
	$(CXX) $(OBJECTS) -o $(TARGET) $(LDFLAGS)
{{range $i, $f := .Sources}}
o{{$i}}.o: "{{$f}}"
	$(CXX) -c "{{$f}}" $(CXXFLAGS) -o o{{$i}}.o
{{end}}
clean:
	rm -f $(OBJECTS) $(TARGET)
`

const emscriptenMakefile = `# HTML5 makefile generated by koremake
CFLAGS = {{if .Debug}}-g{{else}}-O2{{end}} -s USE_WEBGL2=1{{range .Defines}} -D{{.}}{{end}}{{range .Includes}} -I"{{.}}"{{end}}
OBJECTS ={{range $i, $f := .Sources}} o{{$i}}.o{{end}}

{{.Name}}.html: $(OBJECTS)
	emcc $(OBJECTS) -o {{.Name}}.html $(CFLAGS)
{{range $i, $f := .Sources}}
o{{$i}}.o: "{{$f}}"
	emcc -c "{{$f}}" $(CFLAGS) -o o{{$i}}.o
{{end}}`

const androidCMake = `# Android build generated by koremake
cmake_minimum_required(VERSION 3.10)
project({{.Name}})

add_library({{.Name}} SHARED{{range .Sources}}
  "{{slash .}}"{{end}}
)
{{if .Includes}}
target_include_directories({{.Name}} PRIVATE{{range .Includes}}
  "{{slash .}}"{{end}}
)
{{end}}{{if .Defines}}
target_compile_definitions({{.Name}} PRIVATE{{range .Defines}} {{.}}{{end}})
{{end}}
target_link_libraries({{.Name}} android log EGL GLESv3 OpenSLES)
`

const tizenProjectDef = `# Tizen project definition generated by koremake
APPNAME = {{.Name}}
type = app
profile = mobile-2.4

USER_SRCS ={{range .Sources}} {{slash .}}{{end}}
USER_DEFS ={{range .Defines}} {{.}}{{end}}
USER_INC_DIRS ={{range .Includes}} {{slash .}}{{end}}
USER_LIBS = GLESv2 EGL
`

const xcodeProject = `// !$*UTF8*$!
// {{.DisplayName}} project generated by koremake
{
	archiveVersion = 1;
	objectVersion = 46;
	rootObject = {{.Name}};
	targets = (
		{
			name = "{{.Name}}";
			productName = "{{.Name}}";
			productType = "com.apple.product-type.application";
			buildSettings = {
				GCC_PREPROCESSOR_DEFINITIONS = ({{range .Defines}} "{{.}}",{{end}} );
				HEADER_SEARCH_PATHS = ({{range .Includes}} "{{.}}",{{end}} );
			};
			sources = ({{range .Sources}}
				"{{.}}",{{end}}
			);
		},
	);
}
`

const vcxproj = `<?xml version="1.0" encoding="utf-8"?>
<Project DefaultTargets="Build" ToolsVersion="14.0" xmlns="http://schemas.microsoft.com/developer/msbuild/2003">
  <ItemGroup Label="ProjectConfigurations">
    <ProjectConfiguration Include="Debug|Win32">
      <Configuration>Debug</Configuration>
      <Platform>Win32</Platform>
    </ProjectConfiguration>
    <ProjectConfiguration Include="Release|Win32">
      <Configuration>Release</Configuration>
      <Platform>Win32</Platform>
    </ProjectConfiguration>
  </ItemGroup>
  <PropertyGroup Label="Globals">
    <RootNamespace>{{.Name}}</RootNamespace>
    <ProjectName>{{.Name}}</ProjectName>
  </PropertyGroup>
  <Import Project="$(VCTargetsPath)\Microsoft.Cpp.Default.props" />
  <PropertyGroup Label="Configuration">
    <ConfigurationType>Application</ConfigurationType>
    <PlatformToolset>v140</PlatformToolset>
  </PropertyGroup>
  <Import Project="$(VCTargetsPath)\Microsoft.Cpp.props" />
  <ItemDefinitionGroup>
    <ClCompile>
      <PreprocessorDefinitions>{{range .Defines}}{{.}};{{end}}%(PreprocessorDefinitions)</PreprocessorDefinitions>
      <AdditionalIncludeDirectories>{{range .Includes}}{{.}};{{end}}%(AdditionalIncludeDirectories)</AdditionalIncludeDirectories>
    </ClCompile>
  </ItemDefinitionGroup>
  <ItemGroup>{{range .Headers}}
    <ClInclude Include="{{.}}" />{{end}}
  </ItemGroup>
  <ItemGroup>{{range .Sources}}
    <ClCompile Include="{{.}}" />{{end}}
  </ItemGroup>
  <Import Project="$(VCTargetsPath)\Microsoft.Cpp.targets" />
</Project>
`

// NewXCodeExporter creates the exporter for Apple desktop, mobile and TV targets.
func NewXCodeExporter() Exporter {
	return newTemplateExporter(XCode, [2]string{"{{.Name}}.xcodeproj/project.pbxproj", xcodeProject})
}

// NewAndroidExporter creates the Android exporter.
func NewAndroidExporter() Exporter {
	return newTemplateExporter(Android, [2]string{"{{.Name}}/app/CMakeLists.txt", androidCMake})
}

// NewEmscriptenExporter creates the HTML5 exporter.
func NewEmscriptenExporter() Exporter {
	return newTemplateExporter(Emscripten, [2]string{"Makefile", emscriptenMakefile})
}

// NewLinuxExporter creates the makefile exporter used for Linux and Pi.
func NewLinuxExporter() Exporter {
	return newTemplateExporter(Linux, [2]string{"{{.BuildPath}}/Makefile", linuxMakefile})
}

// NewTizenExporter creates the Tizen exporter.
func NewTizenExporter() Exporter {
	return newTemplateExporter(Tizen, [2]string{"project_def.prop", tizenProjectDef})
}

// NewVisualStudioExporter creates the generic IDE solution exporter.
func NewVisualStudioExporter() Exporter {
	return newTemplateExporter(VisualStudio, [2]string{"{{.Name}}.vcxproj", vcxproj})
}
