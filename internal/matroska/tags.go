package matroska

import "mkvlive/internal/ebml"

// IDs the rewriter treats specially.
const (
	IDEBML          uint32 = 0x1a45dfa3
	IDSegment       uint32 = 0x18538067
	IDSeekHead      uint32 = 0x114d9b74
	IDInfo          uint32 = 0x1549a966
	IDTimecodeScale uint32 = 0x2ad7b1
	IDDuration      uint32 = 0x4489
	IDCluster       uint32 = 0x1f43b675
	IDVoid          uint32 = 0xec
	IDTags          uint32 = 0x1254c367
)

// Tag describes one registered element: its display name and how its
// payload is interpreted.
type Tag struct {
	Name string
	Type ebml.Type
}

// Lookup returns the registered name and type for an element ID. A miss is
// not an error; the caller skips the element's payload by size.
func Lookup(id uint32) (Tag, bool) {
	tag, ok := tags[id]
	return tag, ok
}

var tags = map[uint32]Tag{
	// EBML header
	IDEBML: {"EBML", ebml.TypeMaster},
	0x4286: {"EBMLVersion", ebml.TypeUint},
	0x42f7: {"EBMLReadVersion", ebml.TypeUint},
	0x42f2: {"EBMLMaxIDLength", ebml.TypeUint},
	0x42f3: {"EBMLMaxSizeLength", ebml.TypeUint},
	0x4282: {"DocType", ebml.TypeString},
	0x4287: {"DocTypeVersion", ebml.TypeUint},
	0x4285: {"DocTypeReadVersion", ebml.TypeUint},

	// Global elements
	0xbf:   {"CRC-32", ebml.TypeBinary},
	IDVoid: {"Void", ebml.TypeBinary},

	// Signature
	0x1b538667: {"SignatureSlot", ebml.TypeMaster},
	0x7e8a:     {"SignatureAlgo", ebml.TypeUint},
	0x7e9a:     {"SignatureHash", ebml.TypeUint},
	0x7ea5:     {"SignaturePublicKey", ebml.TypeBinary},
	0x7eb5:     {"Signature", ebml.TypeBinary},
	0x7e5b:     {"SignatureElements", ebml.TypeMaster},
	0x7e7b:     {"SignatureElementList", ebml.TypeMaster},
	0x6532:     {"SignedElement", ebml.TypeBinary},

	// Segment
	IDSegment: {"Segment", ebml.TypeMaster},

	// Meta seek information
	IDSeekHead: {"SeekHead", ebml.TypeMaster},
	0x4dbb:     {"Seek", ebml.TypeMaster},
	0x53ab:     {"SeekID", ebml.TypeBinary},
	0x53ac:     {"SeekPosition", ebml.TypeUint},

	// Segment information
	IDInfo:          {"Info", ebml.TypeMaster},
	0x73a4:          {"SegmentUID", ebml.TypeBinary},
	0x7384:          {"SegmentFilename", ebml.TypeUTF8},
	0x3cb923:        {"PrevUID", ebml.TypeBinary},
	0x3c83ab:        {"PrevFilename", ebml.TypeUTF8},
	0x3eb923:        {"NextUID", ebml.TypeBinary},
	0x3e83bb:        {"NextFilename", ebml.TypeUTF8},
	0x4444:          {"SegmentFamily", ebml.TypeBinary},
	0x6924:          {"ChapterTranslate", ebml.TypeMaster},
	0x69fc:          {"ChapterTranslateEditionUID", ebml.TypeUint},
	0x69bf:          {"ChapterTranslateCodec", ebml.TypeUint},
	0x69a5:          {"ChapterTranslateID", ebml.TypeBinary},
	IDTimecodeScale: {"TimecodeScale", ebml.TypeUint},
	IDDuration:      {"Duration", ebml.TypeFloat},
	0x4461:          {"DateUTC", ebml.TypeDate},
	0x7ba9:          {"Title", ebml.TypeUTF8},
	0x4d80:          {"MuxingApp", ebml.TypeUTF8},
	0x5741:          {"WritingApp", ebml.TypeUTF8},

	// Cluster
	IDCluster: {"Cluster", ebml.TypeMaster},
	0xe7:      {"Timecode", ebml.TypeUint},
	0x5854:    {"SilentTracks", ebml.TypeMaster},
	0x58d7:    {"SilentTrackNumber", ebml.TypeUint},
	0xa7:      {"Position", ebml.TypeUint},
	0xab:      {"PrevSize", ebml.TypeUint},
	0xa3:      {"SimpleBlock", ebml.TypeBinary},
	0xa0:      {"BlockGroup", ebml.TypeMaster},
	0xa1:      {"Block", ebml.TypeBinary},
	0xa2:      {"BlockVirtual", ebml.TypeBinary},
	0x75a1:    {"BlockAdditions", ebml.TypeMaster},
	0xa6:      {"BlockMore", ebml.TypeMaster},
	0xee:      {"BlockAddID", ebml.TypeUint},
	0xa5:      {"BlockAdditional", ebml.TypeBinary},
	0x9b:      {"BlockDuration", ebml.TypeUint},
	0xfa:      {"ReferencePriority", ebml.TypeUint},
	0xfb:      {"ReferenceBlock", ebml.TypeInt},
	0xfd:      {"ReferenceVirtual", ebml.TypeInt},
	0xa4:      {"CodecState", ebml.TypeBinary},
	0x8e:      {"Slices", ebml.TypeMaster},
	0xe8:      {"TimeSlice", ebml.TypeMaster},
	0xcc:      {"LaceNumber", ebml.TypeUint},
	0xcd:      {"FrameNumber", ebml.TypeUint},
	0xcb:      {"BlockAdditionID", ebml.TypeUint},
	0xce:      {"Delay", ebml.TypeUint},
	0xcf:      {"SliceDuration", ebml.TypeUint},
	0xaf:      {"EncryptedBlock", ebml.TypeBinary},

	// Tracks
	0x1654ae6b: {"Tracks", ebml.TypeMaster},
	0xae:       {"TrackEntry", ebml.TypeMaster},
	0xd7:       {"TrackNumber", ebml.TypeUint},
	0x73c5:     {"TrackUID", ebml.TypeUint},
	0x83:       {"TrackType", ebml.TypeUint},
	0xb9:       {"FlagEnabled", ebml.TypeUint},
	0x88:       {"FlagDefault", ebml.TypeUint},
	0x55aa:     {"FlagForced", ebml.TypeUint},
	0x9c:       {"FlagLacing", ebml.TypeUint},
	0x6de7:     {"MinCache", ebml.TypeUint},
	0x6df8:     {"MaxCache", ebml.TypeUint},
	0x23e383:   {"DefaultDuration", ebml.TypeUint},
	0x23314f:   {"TrackTimecodeScale", ebml.TypeFloat},
	0x537f:     {"TrackOffset", ebml.TypeInt},
	0x55ee:     {"MaxBlockAdditionID", ebml.TypeUint},
	0x536e:     {"Name", ebml.TypeUTF8},
	0x22b59c:   {"Language", ebml.TypeString},
	0x86:       {"CodecID", ebml.TypeString},
	0x63a2:     {"CodecPrivate", ebml.TypeBinary},
	0x258688:   {"CodecName", ebml.TypeUTF8},
	0x7446:     {"AttachmentLink", ebml.TypeUint},
	0x3a9697:   {"CodecSettings", ebml.TypeUTF8},
	0x3b4040:   {"CodecInfoURL", ebml.TypeString},
	0x26b240:   {"CodecDownloadURL", ebml.TypeString},
	0xaa:       {"CodecDecodeAll", ebml.TypeUint},
	0x6fab:     {"TrackOverlay", ebml.TypeUint},
	0x6624:     {"TrackTranslate", ebml.TypeMaster},
	0x66fc:     {"TrackTranslateEditionUID", ebml.TypeUint},
	0x66bf:     {"TrackTranslateCodec", ebml.TypeUint},
	0x66a5:     {"TrackTranslateTrackID", ebml.TypeBinary},

	// Video
	0xe0:     {"Video", ebml.TypeMaster},
	0x9a:     {"FlagInterlaced", ebml.TypeUint},
	0x53b8:   {"StereoMode", ebml.TypeUint},
	0xb0:     {"PixelWidth", ebml.TypeUint},
	0xba:     {"PixelHeight", ebml.TypeUint},
	0x54aa:   {"PixelCropBottom", ebml.TypeUint},
	0x54bb:   {"PixelCropTop", ebml.TypeUint},
	0x54cc:   {"PixelCropLeft", ebml.TypeUint},
	0x54dd:   {"PixelCropRight", ebml.TypeUint},
	0x54b0:   {"DisplayWidth", ebml.TypeUint},
	0x54ba:   {"DisplayHeight", ebml.TypeUint},
	0x54b2:   {"DisplayUnit", ebml.TypeUint},
	0x54b3:   {"AspectRatioType", ebml.TypeUint},
	0x2eb524: {"ColourSpace", ebml.TypeBinary},
	0x2fb523: {"GammaValue", ebml.TypeFloat},
	0x2383e3: {"FrameRate", ebml.TypeFloat},

	// Audio
	0xe1:   {"Audio", ebml.TypeMaster},
	0xb5:   {"SamplingFrequency", ebml.TypeFloat},
	0x78b5: {"OutputSamplingFrequency", ebml.TypeFloat},
	0x9f:   {"Channels", ebml.TypeUint},
	0x7d7b: {"ChannelPositions", ebml.TypeBinary},
	0x6264: {"BitDepth", ebml.TypeUint},

	// Content encoding
	0x6d80: {"ContentEncodings", ebml.TypeMaster},
	0x6240: {"ContentEncoding", ebml.TypeMaster},
	0x5031: {"ContentEncodingOrder", ebml.TypeUint},
	0x5032: {"ContentEncodingScope", ebml.TypeUint},
	0x5033: {"ContentEncodingType", ebml.TypeUint},
	0x5034: {"ContentCompression", ebml.TypeMaster},
	0x4254: {"ContentCompAlgo", ebml.TypeUint},
	0x4255: {"ContentCompSettings", ebml.TypeBinary},
	0x5035: {"ContentEncryption", ebml.TypeMaster},
	0x47e1: {"ContentEncAlgo", ebml.TypeUint},
	0x47e2: {"ContentEncKeyID", ebml.TypeBinary},
	0x47e3: {"ContentSignature", ebml.TypeBinary},
	0x47e4: {"ContentSigKeyID", ebml.TypeBinary},
	0x47e5: {"ContentSigAlgo", ebml.TypeUint},
	0x47e6: {"ContentSigHashAlgo", ebml.TypeUint},

	// Track operations
	0xe2: {"TrackOperation", ebml.TypeMaster},
	0xe3: {"TrackCombinePlanes", ebml.TypeMaster},
	0xe4: {"TrackPlane", ebml.TypeMaster},
	0xe5: {"TrackPlaneUID", ebml.TypeUint},
	0xe6: {"TrackPlaneType", ebml.TypeUint},
	0xe9: {"TrackJoinBlocks", ebml.TypeMaster},
	0xed: {"TrackJoinUID", ebml.TypeUint},

	// Cueing data
	0x1c53bb6b: {"Cues", ebml.TypeMaster},
	0xbb:       {"CuePoint", ebml.TypeMaster},
	0xb3:       {"CueTime", ebml.TypeUint},
	0xb7:       {"CueTrackPositions", ebml.TypeMaster},
	0xf7:       {"CueTrack", ebml.TypeUint},
	0xf1:       {"CueClusterPosition", ebml.TypeUint},
	0x5378:     {"CueBlockNumber", ebml.TypeUint},
	0xea:       {"CueCodecState", ebml.TypeUint},
	0xdb:       {"CueReference", ebml.TypeMaster},
	0x96:       {"CueRefTime", ebml.TypeUint},
	0x97:       {"CueRefCluster", ebml.TypeUint},
	0x535f:     {"CueRefNumber", ebml.TypeUint},
	0xeb:       {"CueRefCodecState", ebml.TypeUint},

	// Attachments
	0x1941a469: {"Attachments", ebml.TypeMaster},
	0x61a7:     {"AttachedFile", ebml.TypeMaster},
	0x467e:     {"FileDescription", ebml.TypeUTF8},
	0x466e:     {"FileName", ebml.TypeUTF8},
	0x4660:     {"FileMimeType", ebml.TypeString},
	0x465c:     {"FileData", ebml.TypeBinary},
	0x46ae:     {"FileUID", ebml.TypeUint},
	0x4675:     {"FileReferral", ebml.TypeBinary},

	// Chapters
	0x1043a770: {"Chapters", ebml.TypeMaster},
	0x45b9:     {"EditionEntry", ebml.TypeMaster},
	0x45bc:     {"EditionUID", ebml.TypeUint},
	0x45bd:     {"EditionFlagHidden", ebml.TypeUint},
	0x45db:     {"EditionFlagDefault", ebml.TypeUint},
	0x45dd:     {"EditionFlagOrdered", ebml.TypeUint},
	0xb6:       {"ChapterAtom", ebml.TypeMaster},
	0x73c4:     {"ChapterUID", ebml.TypeUint},
	0x91:       {"ChapterTimeStart", ebml.TypeUint},
	0x92:       {"ChapterTimeEnd", ebml.TypeUint},
	0x98:       {"ChapterFlagHidden", ebml.TypeUint},
	0x4598:     {"ChapterFlagEnabled", ebml.TypeUint},
	0x6e67:     {"ChapterSegmentUID", ebml.TypeBinary},
	0x6ebc:     {"ChapterSegmentEditionUID", ebml.TypeBinary},
	0x63c3:     {"ChapterPhysicalEquiv", ebml.TypeUint},
	0x8f:       {"ChapterTrack", ebml.TypeMaster},
	0x89:       {"ChapterTrackNumber", ebml.TypeUint},
	0x80:       {"ChapterDisplay", ebml.TypeMaster},
	0x85:       {"ChapString", ebml.TypeUTF8},
	0x437c:     {"ChapLanguage", ebml.TypeString},
	0x437e:     {"ChapCountry", ebml.TypeString},
	0x6944:     {"ChapProcess", ebml.TypeMaster},
	0x6955:     {"ChapProcessCodecID", ebml.TypeUint},
	0x450d:     {"ChapProcessPrivate", ebml.TypeBinary},
	0x6911:     {"ChapProcessCommand", ebml.TypeMaster},
	0x6922:     {"ChapProcessTime", ebml.TypeUint},
	0x6933:     {"ChapProcessData", ebml.TypeBinary},

	// Tagging
	IDTags: {"Tags", ebml.TypeMaster},
	0x7373: {"Tag", ebml.TypeMaster},
	0x63c0: {"Targets", ebml.TypeMaster},
	0x68ca: {"TargetTypeValue", ebml.TypeUint},
	0x63ca: {"TargetType", ebml.TypeString},
	0x63c5: {"TagTrackUID", ebml.TypeUint},
	0x63c9: {"TagEditionUID", ebml.TypeUint},
	0x63c4: {"TagChapterUID", ebml.TypeUint},
	0x63c6: {"TagAttachmentUID", ebml.TypeUint},
	0x67c8: {"SimpleTag", ebml.TypeMaster},
	0x45a3: {"TagName", ebml.TypeUTF8},
	0x447a: {"TagLanguage", ebml.TypeString},
	0x4484: {"TagDefault", ebml.TypeUint},
	0x4487: {"TagString", ebml.TypeUTF8},
	0x4485: {"TagBinary", ebml.TypeBinary},
}
