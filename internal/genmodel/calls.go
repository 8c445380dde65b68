// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package genmodel

// New builds the compiled-in API model. This is the single authoritative
// description every backend walks; there is no external schema file.
func New() Model {
	return Model{
		Calls: calls,
		PV:    pvSchema,
		VG:    vgSchema,
		LV:    lvSchema,
	}
}

var pvSchema = RecordSchema{
	Name: "pv",
	Columns: []Column{
		{Name: "pv_name", Kind: ColString},
		{Name: "pv_uuid", Kind: ColUUID},
		{Name: "vg_name", Kind: ColString},
		{Name: "pv_size", Kind: ColBytes},
		{Name: "pv_free", Kind: ColBytes},
		{Name: "pv_pe_count", Kind: ColInt},
		{Name: "pv_pe_alloc_count", Kind: ColInt},
	},
}

var vgSchema = RecordSchema{
	Name: "vg",
	Columns: []Column{
		{Name: "vg_name", Kind: ColString},
		{Name: "vg_uuid", Kind: ColUUID},
		{Name: "vg_size", Kind: ColBytes},
		{Name: "vg_free", Kind: ColBytes},
		{Name: "vg_extent_count", Kind: ColInt},
		{Name: "vg_pv_count", Kind: ColInt},
	},
}

var lvSchema = RecordSchema{
	Name: "lv",
	Columns: []Column{
		{Name: "lv_name", Kind: ColString},
		{Name: "lv_uuid", Kind: ColUUID},
		{Name: "vg_name", Kind: ColString},
		{Name: "lv_size", Kind: ColBytes},
		{Name: "lv_attr", Kind: ColString},
		{Name: "data_percent", Kind: ColOptPercent},
	},
}

func str(s string) *string { return &s }

// calls is the ordered declaration of every call in the API. Ordering here
// matters only for artefacts documented as "declaration order" (§9); every
// other artefact sorts alphabetically or by procedure number.
//
// Procedure numbers 7, 8 and 9 are permanently retired: they belonged to
// calls removed from an earlier revision of this table and must never be
// reassigned (§6).
var calls = []Call{
	{
		Name:            "get_last_error",
		Args:            nil,
		Return:          Return{Kind: RetConstString, FieldName: "message"},
		ProcedureNumber: NoProcedure,
		ShortDesc:       "return the last error message, if any",
		LongDesc:        "Returns the text of the most recent error recorded on the handle, or an empty string if no call has failed yet. The returned string is owned by the handle and must not be freed; it remains valid only until the next call on this handle.",
	},
	{
		Name:            "set_path",
		Args:            []Arg{{Name: "searchpath", Kind: ArgString}},
		Return:          Return{Kind: RetErr},
		ProcedureNumber: NoProcedure,
		Flags:           Flags{ShellAlias: str("path")},
		ShortDesc:       "set the search path for kernel and initrd",
		LongDesc:        "Sets the colon-separated path used by C<guestfs_set_path>'s callers to locate a kernel and initrd when none is given explicitly. This setting is purely client-side and never reaches the daemon.",
	},
	{
		Name:            "get_path",
		Args:            nil,
		Return:          Return{Kind: RetConstString, FieldName: "searchpath"},
		ProcedureNumber: NoProcedure,
		ShortDesc:       "return the current search path",
		LongDesc:        "Returns the search path previously set by C<guestfs_set_path>, or the default path if it was never called. The returned string is owned by the handle.",
	},
	{
		Name:            "version",
		Args:            nil,
		Return:          Return{Kind: RetString, FieldName: "version"},
		ProcedureNumber: 1,
		ShortDesc:       "return the daemon's build identifier",
		LongDesc:        "Returns a free-form string identifying the build of the daemon currently servicing this handle. The string is caller-owned; free it with the matching free routine.",
	},
	{
		Name:            "sync",
		Args:            nil,
		Return:          Return{Kind: RetErr},
		ProcedureNumber: 2,
		ShortDesc:       "flush disk buffers",
		LongDesc:        "Commits any pending writes to the disk image. Call this before C<guestfs_umount> or before closing the handle if durability of writes matters to the caller.",
	},
	{
		Name:            "touch",
		Args:            []Arg{{Name: "path", Kind: ArgString}},
		Return:          Return{Kind: RetErr},
		ProcedureNumber: 3,
		ShortDesc:       "update file timestamps or create a new file",
		LongDesc:        "Touches a file, updating the timestamps on a file that already exists, or creating a new zero-length file if it does not. This command only works on regular files, and will fail on other file types such as directories, symbolic links, block special etc.",
	},
	{
		Name:            "cat",
		Args:            []Arg{{Name: "path", Kind: ArgString}},
		Return:          Return{Kind: RetString, FieldName: "content"},
		ProcedureNumber: 4,
		Flags:           Flags{ProtocolLimitWarning: true},
		ShortDesc:       "return the contents of a file",
		LongDesc:        "Returns the contents of the file named C<path>. Because the content has to be transferred from the daemon over the wire, the file size is restricted by the protocol's message-size ceiling; use C<guestfs_download> for large files.",
	},
	{
		Name:            "is_file",
		Args:            []Arg{{Name: "path", Kind: ArgString}},
		Return:          Return{Kind: RetBool, FieldName: "exists"},
		ProcedureNumber: 5,
		Flags:           Flags{ShellAlias: str("exists-file")},
		ShortDesc:       "test whether a regular file exists",
		LongDesc:        "Checks whether a file exists and is a regular file (not a directory or special file). This call does not fail when the path is missing; it returns false instead.",
	},
	{
		Name:            "rm",
		Args:            []Arg{{Name: "path", Kind: ArgString}},
		Return:          Return{Kind: RetErr},
		ProcedureNumber: 6,
		ShortDesc:       "remove a file",
		LongDesc:        "Removes the named file. To remove a directory use C<guestfs_rmdir> or C<guestfs_rm_rf> instead.",
	},
	{
		Name:            "list_filesystems",
		Args:            nil,
		Return:          Return{Kind: RetStringList, FieldName: "fses"},
		ProcedureNumber: 10,
		ShortDesc:       "list filesystems found on the disk image",
		LongDesc:        "Returns a list naming every filesystem the daemon was able to identify on the attached disk image. The list is caller-owned; free it with the matching free routine.",
	},
	{
		Name:            "mkdir",
		Args:            []Arg{{Name: "path", Kind: ArgString}},
		Return:          Return{Kind: RetErr},
		ProcedureNumber: 11,
		ShortDesc:       "create a directory",
		LongDesc:        "Creates a directory named C<path>. The parent directory must already exist; use C<guestfs_mkdir_p> to create intermediate directories as needed.",
	},
	{
		Name:            "stat_size",
		Args:            []Arg{{Name: "path", Kind: ArgString}},
		Return:          Return{Kind: RetInt, FieldName: "size"},
		ProcedureNumber: 12,
		Flags:           Flags{ShellAlias: str("size")},
		ShortDesc:       "return the size of a file in bytes",
		LongDesc:        "Returns the size in bytes of the named file. This call follows symbolic links, and fails if the path does not refer to a regular file.",
	},
	{
		Name:            "write_file",
		Args:            []Arg{{Name: "path", Kind: ArgString}, {Name: "content", Kind: ArgString}},
		Return:          Return{Kind: RetErr},
		ProcedureNumber: 13,
		Flags:           Flags{ProtocolLimitWarning: true},
		ShortDesc:       "replace the contents of a file",
		LongDesc:        "Creates a new file, or replaces the contents of an existing one, with C<content>. See C<guestfs_cat> for the matching read operation and its protocol limits.",
	},
	{
		Name:            "copy_file",
		Args:            []Arg{{Name: "src", Kind: ArgString}, {Name: "dest", Kind: ArgString}},
		Return:          Return{Kind: RetErr},
		ProcedureNumber: 14,
		Flags:           Flags{ShellAction: str("do_copy_file_shell")},
		ShortDesc:       "copy a file",
		LongDesc:        "Copies the content of C<src> to C<dest>. If C<dest> is an existing directory, the source file is copied into it using its original basename.",
	},
	{
		Name:            "ln",
		Args:            []Arg{{Name: "target", Kind: ArgString}, {Name: "linkname", Kind: ArgString}},
		Return:          Return{Kind: RetErr},
		ProcedureNumber: 15,
		ShortDesc:       "create a hard link",
		LongDesc:        "Creates a hard link named C<linkname> to C<target>. Both paths must reside on the same filesystem.",
	},
	{
		Name:            "grep_count",
		Args:            []Arg{{Name: "pattern", Kind: ArgString}, {Name: "path", Kind: ArgOptString}},
		Return:          Return{Kind: RetInt, FieldName: "matches"},
		ProcedureNumber: 16,
		ShortDesc:       "count lines matching a pattern",
		LongDesc:        "Counts the number of lines matching C<pattern>. If C<path> is given the search is restricted to that file; otherwise every regular file under the current working directory is searched.",
	},
	{
		Name:            "mount",
		Args:            []Arg{{Name: "device", Kind: ArgString}, {Name: "mountpoint", Kind: ArgString}},
		Return:          Return{Kind: RetErr},
		ProcedureNumber: 17,
		ShortDesc:       "mount a device read-write",
		LongDesc:        "Mounts C<device> (a filesystem or LVM logical volume device) at C<mountpoint>. C<mountpoint> must already exist. See also C<guestfs_umount>.",
	},
	{
		Name:            "chmod",
		Args:            []Arg{{Name: "mode", Kind: ArgInt}, {Name: "path", Kind: ArgString}},
		Return:          Return{Kind: RetErr},
		ProcedureNumber: 18,
		ShortDesc:       "change file permissions",
		LongDesc:        "Changes the permissions of C<path> to C<mode>. C<mode> must be expressed in octal notation the way the underlying system call expects it, e.g. 0755.",
	},
	{
		Name: "copy_file_range",
		Args: []Arg{
			{Name: "src", Kind: ArgString},
			{Name: "dest", Kind: ArgString},
			{Name: "length", Kind: ArgInt},
		},
		Return:          Return{Kind: RetErr},
		ProcedureNumber: 19,
		Flags:           Flags{NotInShell: true},
		ShortDesc:       "copy the first N bytes of a file",
		LongDesc:        "Copies the first C<length> bytes of C<src> to C<dest>, truncating or extending C<dest> as needed. This is a low-level primitive not exposed in the interactive shell; use C<guestfs_copy_file> there instead.",
	},
	{
		Name: "set_attr3",
		Args: []Arg{
			{Name: "path", Kind: ArgString},
			{Name: "key", Kind: ArgString},
			{Name: "value", Kind: ArgOptString},
		},
		Return:          Return{Kind: RetErr},
		ProcedureNumber: 20,
		ShortDesc:       "set or clear an extended attribute",
		LongDesc:        "Sets the extended attribute C<key> on C<path> to C<value>. If C<value> is absent the attribute is removed instead of set.",
	},
	{
		Name: "checksum_verify",
		Args: []Arg{
			{Name: "path1", Kind: ArgString},
			{Name: "path2", Kind: ArgString},
		},
		Return:          Return{Kind: RetIntBool, FieldName: "compared"},
		ProcedureNumber: 24,
		ShortDesc:       "compare two files byte for byte",
		LongDesc:        "Compares C<path1> and C<path2> byte for byte up to the length of the shorter file. Returns the number of bytes compared and whether every compared byte matched.",
	},
	{
		Name:            "pvs",
		Args:            nil,
		Return:          Return{Kind: RetPVList, FieldName: "physvols"},
		ProcedureNumber: 21,
		ShortDesc:       "list the LVM physical volumes",
		LongDesc:        "Lists all LVM physical volumes detected on the disk image. See C<guestfs_vgs> and C<guestfs_lvs> for the corresponding volume-group and logical-volume listings.",
	},
	{
		Name:            "vgs",
		Args:            nil,
		Return:          Return{Kind: RetVGList, FieldName: "volgroups"},
		ProcedureNumber: 22,
		ShortDesc:       "list the LVM volume groups",
		LongDesc:        "Lists all LVM volume groups detected on the disk image.",
	},
	{
		Name:            "lvs",
		Args:            nil,
		Return:          Return{Kind: RetLVList, FieldName: "logvols"},
		ProcedureNumber: 23,
		ShortDesc:       "list the LVM logical volumes",
		LongDesc:        "Lists all LVM logical volumes detected on the disk image.",
	},
}
