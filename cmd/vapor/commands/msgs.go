package commands

// Short messages (one-liners)
const (
	MsgRootShort = "A game mod manager with a verified file ledger"
	MsgRootLong  = `vapor installs, disables, and removes game mods while keeping a ledger
of every file it placed in the game directory. Each file is checksummed
on install and verified before any move, so files changed outside vapor
are never silently clobbered.`

	MsgInitShort    = "Configure the game installation directory"
	MsgAddShort     = "Install a mod from a directory or zip archive"
	MsgEnableShort  = "Move a disabled mod's files back into the game"
	MsgDisableShort = "Move a mod's files out of the game into quarantine"
	MsgRemoveShort  = "Delete a mod's files and drop it from the ledger"
	MsgListShort    = "List installed mods"
	MsgStatusShort  = "Show a mod's files, checksums, and state"
	MsgFilesShort   = "Print the relative paths a mod owns"
	MsgVersionShort = "Print version information"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagJSON    = "Emit machine-readable JSON instead of styled text"
)

// Long messages
const (
	MsgInitLong = `Init records the game installation directory in vapor's config file.
If no directory is given, vapor scans Steam library folders for
candidates and lists them.

An existing config is only overwritten with --force.`

	MsgAddLong = `Add installs a mod into the game directory and records every file it
places in the ledger. The source may be a directory laid out like the
game root or a zip archive with the same layout.

Top-level directories must be ones the game actually loads from.
Installation is atomic: if any file cannot be placed, everything
already placed is rolled back and the ledger is untouched.`

	MsgEnableLong = `Enable moves a disabled mod's files from quarantine back to their
recorded locations in the game directory. Every file is verified
against its recorded checksum before anything moves, and the target
paths are checked against other enabled mods for conflicts.`

	MsgDisableLong = `Disable moves every file a mod owns out of the game directory into
quarantine. Files are verified against their recorded checksums first;
if any file was modified outside vapor, nothing moves.`

	MsgRemoveLong = `Remove deletes a mod's files wherever they live (game directory when
enabled, quarantine when disabled) and drops the mod from the ledger.
Deletion is best-effort: files that cannot be deleted are reported and
the mod stays in the ledger owning only the survivors.`
)

// Examples
const (
	MsgInitExample = `  # Scan Steam libraries for the game
  vapor init

  # Point vapor at an explicit install
  vapor init "~/Games/Cyberpunk 2077"

  # Replace an existing config
  vapor init --force /mnt/games/cyberpunk`

	MsgAddExample = `  # Install from an unpacked directory
  vapor add ./my-mod --name better-minimap

  # Install from a zip, with metadata
  vapor add mod.zip --name better-minimap --version 1.2.0 --dep redscript`

	MsgListExample = `  # Human-readable list
  vapor list

  # Machine-readable
  vapor list --json`
)
