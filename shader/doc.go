// Package shader loads WGSL programs by name and validates them.
//
// Each program lives in its own <name>.wgsl file with a vertex entry
// point vs_main and a fragment entry point fs_main. A [Loader] reads the
// files from an fs.FS directory and may fall back to another Loader; the
// programs used by the tutorial steps are also compiled into the binary
// and served by [Embedded].
//
//	src, err := shader.Default().Load(shader.Teapot)
//	if err != nil {
//		log.Fatal(err)
//	}
//	spirv, err := shader.Compile(src)
package shader
