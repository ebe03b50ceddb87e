package altium

// groupRuns clusters a flat sub-record stream into per-object runs. A
// sub-record of type 0 starts a new run (it carries either the object's
// embedded name/string, for Pad and Text, or is the sole geometry
// sub-record for single-sub-record object kinds like Track/Arc/Via/Fill);
// any sub-record with a nonzero type attaches to the run currently being
// built, which is how Pad's optional shape-override sub-record and Text's
// wide-string-index sub-record join their parent record.
func groupRuns(subs []subRecord) [][]subRecord {
	var runs [][]subRecord
	for _, sr := range subs {
		if sr.Type == 0 || len(runs) == 0 {
			runs = append(runs, []subRecord{sr})
			continue
		}
		runs[len(runs)-1] = append(runs[len(runs)-1], sr)
	}
	return runs
}

func parseTracks6(data []byte) ([]trackRecord, error) {
	subs, err := readSubRecords(data)
	if err != nil {
		return nil, err
	}
	out := make([]trackRecord, 0, len(subs))
	for _, run := range groupRuns(subs) {
		p := geomPayload(run)
		if len(p) < 33 {
			continue
		}
		out = append(out, trackRecord{
			Layer:     int(u8At(p, 0)),
			Net:       int(i16At(p, 3)),
			Component: int(i16At(p, 7)),
			X1:        i32At(p, 13), Y1: i32At(p, 17),
			X2: i32At(p, 21), Y2: i32At(p, 25),
			Width: i32At(p, 29),
		})
	}
	return out, nil
}

func parseArcs6(data []byte) ([]arcRecord, error) {
	subs, err := readSubRecords(data)
	if err != nil {
		return nil, err
	}
	out := make([]arcRecord, 0, len(subs))
	for _, run := range groupRuns(subs) {
		p := geomPayload(run)
		if len(p) < 45 {
			continue
		}
		out = append(out, arcRecord{
			Layer:     int(u8At(p, 0)),
			Net:       int(i16At(p, 3)),
			Component: int(i16At(p, 7)),
			CX:        i32At(p, 13), CY: i32At(p, 17),
			Radius:     i32At(p, 21),
			StartAngle: f64At(p, 25),
			EndAngle:   f64At(p, 33),
			Width:      i32At(p, 41),
		})
	}
	return out, nil
}

func parseVias6(data []byte) ([]viaRecord, error) {
	subs, err := readSubRecords(data)
	if err != nil {
		return nil, err
	}
	out := make([]viaRecord, 0, len(subs))
	for _, run := range groupRuns(subs) {
		p := geomPayload(run)
		if len(p) < 31 {
			continue
		}
		out = append(out, viaRecord{
			Net:        int(i16At(p, 3)),
			X:          i32At(p, 13), Y: i32At(p, 17),
			Diameter:   i32At(p, 21),
			Hole:       i32At(p, 25),
			StartLayer: int(u8At(p, 29)),
			EndLayer:   int(u8At(p, 30)),
		})
	}
	return out, nil
}

func parsePads6(data []byte) ([]padRecord, error) {
	subs, err := readSubRecords(data)
	if err != nil {
		return nil, err
	}
	out := make([]padRecord, 0, len(subs))
	for _, run := range groupRuns(subs) {
		p := geomPayload(run)
		if len(p) < 71 {
			continue
		}
		name := latin1ToUTF8(trimNull(namePayload(run)))
		out = append(out, padRecord{
			Name:      name,
			Layer:     int(u8At(p, 0)),
			Net:       int(i16At(p, 7)),
			Component: int(i16At(p, 13)),
			X:         i32At(p, 23), Y: i32At(p, 27),
			TopW: i32At(p, 31), TopH: i32At(p, 35),
			MidW: i32At(p, 39), MidH: i32At(p, 43),
			BotW: i32At(p, 47), BotH: i32At(p, 51),
			Hole:     i32At(p, 55),
			TopShape: int(u8At(p, 59)),
			MidShape: int(u8At(p, 60)),
			BotShape: int(u8At(p, 61)),
			Rotation: f64At(p, 62),
			Plated:   u8At(p, 70) != 0,
		})
	}
	return out, nil
}

func parseTexts6(data []byte) ([]textRecord, error) {
	subs, err := readSubRecords(data)
	if err != nil {
		return nil, err
	}
	out := make([]textRecord, 0, len(subs))
	for _, run := range groupRuns(subs) {
		p := geomPayload(run)
		if len(p) < 35 {
			continue
		}
		rec := textRecord{
			Text:      latin1ToUTF8(trimNull(namePayload(run))),
			WideIdx:   -1,
			Layer:     int(u8At(p, 0)),
			Component: int(i16At(p, 7)),
			X:         i32At(p, 13), Y: i32At(p, 17),
			Height:    i32At(p, 21),
			Rotation:  f64At(p, 25),
			Mirror:    u8At(p, 33) != 0,
			Thickness: i32At(p, 34),
		}
		// A third, 4-byte sub-record (neither the name nor the geometry
		// payload) carries the WideStrings6 index when present.
		geomIdx, nameIdx := payloadIndices(run)
		for i, sr := range run {
			if i == geomIdx || i == nameIdx {
				continue
			}
			if len(sr.Payload) == 4 {
				rec.WideIdx = int(i32At(sr.Payload, 0))
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseFills6(data []byte) ([]fillRecord, error) {
	subs, err := readSubRecords(data)
	if err != nil {
		return nil, err
	}
	out := make([]fillRecord, 0, len(subs))
	for _, run := range groupRuns(subs) {
		p := geomPayload(run)
		if len(p) < 37 {
			continue
		}
		out = append(out, fillRecord{
			Layer:     int(u8At(p, 0)),
			Component: int(i16At(p, 7)),
			X1:        i32At(p, 13), Y1: i32At(p, 17),
			X2:       i32At(p, 21), Y2: i32At(p, 25),
			Rotation: f64At(p, 29),
		})
	}
	return out, nil
}

func trimNull(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}
