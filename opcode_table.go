package dcc

// opcodeTable is the 256-entry dispatch table translating the 8086
// opcode map: for each first byte, which handler(s) decode the rest of
// the instruction and what static flags/opcode/def-use masks apply
// before those handlers run. This table is data, not logic — the
// algorithms live in the handler functions in decoder.go.
//
// Grp1 (0x80-0x83), Grp2 (0xC0/0xC1/0xD0-0xD3), Grp3 (0xF6/0xF7), Grp4
// (0xFE) and Grp5 (0xFF) rows carry IZERO as their nominal opcode: the
// real mnemonic is only known once immedHandler/shiftHandler/
// arithHandler/transHandler inspect the modrm reg field.
var opcodeTable = [256]opEntry{
	0x00: {modrmHandler, none2Handler, FlagB, IADD, SZC, 0},
	0x01: {modrmHandler, none2Handler, 0, IADD, SZC, 0},
	0x02: {modrmHandler, none2Handler, FlagToReg | FlagB, IADD, SZC, 0},
	0x03: {modrmHandler, none2Handler, FlagToReg, IADD, SZC, 0},
	0x04: {data1Handler, axImpHandler, FlagB, IADD, SZC, 0},
	0x05: {data2Handler, axImpHandler, 0, IADD, SZC, 0},
	0x06: {segopHandler, none2Handler, FlagNoSrc, IPUSH, 0, 0},
	0x07: {segopHandler, none2Handler, FlagNoSrc, IPOP, 0, 0},

	0x08: {modrmHandler, none2Handler, FlagB, IOR, SZC, 0},
	0x09: {modrmHandler, none2Handler, FlagNSP, IOR, SZC, 0},
	0x0A: {modrmHandler, none2Handler, FlagToReg | FlagB, IOR, SZC, 0},
	0x0B: {modrmHandler, none2Handler, FlagToReg | FlagNSP, IOR, SZC, 0},
	0x0C: {data1Handler, axImpHandler, FlagB, IOR, SZC, 0},
	0x0D: {data2Handler, axImpHandler, 0, IOR, SZC, 0},
	0x0E: {segopHandler, none2Handler, FlagNoSrc, IPUSH, 0, 0},
	0x0F: {none1Handler, none2Handler, FlagOp386, IZERO, 0, 0},

	0x10: {modrmHandler, none2Handler, FlagB, IADC, SZC, EflagC},
	0x11: {modrmHandler, none2Handler, FlagNSP, IADC, SZC, EflagC},
	0x12: {modrmHandler, none2Handler, FlagToReg | FlagB, IADC, SZC, EflagC},
	0x13: {modrmHandler, none2Handler, FlagToReg | FlagNSP, IADC, SZC, EflagC},
	0x14: {data1Handler, axImpHandler, FlagB, IADC, SZC, EflagC},
	0x15: {data2Handler, axImpHandler, 0, IADC, SZC, EflagC},
	0x16: {segopHandler, none2Handler, FlagNotHLL | FlagNoSrc, IPUSH, 0, 0},
	0x17: {segopHandler, none2Handler, FlagNotHLL | FlagNoSrc, IPOP, 0, 0},

	0x18: {modrmHandler, none2Handler, FlagB, ISBB, SZC, EflagC},
	0x19: {modrmHandler, none2Handler, FlagNSP, ISBB, SZC, EflagC},
	0x1A: {modrmHandler, none2Handler, FlagToReg | FlagB, ISBB, SZC, EflagC},
	0x1B: {modrmHandler, none2Handler, FlagToReg | FlagNSP, ISBB, SZC, EflagC},
	0x1C: {data1Handler, axImpHandler, FlagB, ISBB, SZC, EflagC},
	0x1D: {data2Handler, axImpHandler, 0, ISBB, SZC, EflagC},
	0x1E: {segopHandler, none2Handler, FlagNoSrc, IPUSH, 0, 0},
	0x1F: {segopHandler, none2Handler, FlagNoSrc, IPOP, 0, 0},

	0x20: {modrmHandler, none2Handler, FlagB, IAND, SZC, 0},
	0x21: {modrmHandler, none2Handler, FlagNSP, IAND, SZC, 0},
	0x22: {modrmHandler, none2Handler, FlagToReg | FlagB, IAND, SZC, 0},
	0x23: {modrmHandler, none2Handler, FlagToReg | FlagNSP, IAND, SZC, 0},
	0x24: {data1Handler, axImpHandler, FlagB, IAND, SZC, 0},
	0x25: {data2Handler, axImpHandler, 0, IAND, SZC, 0},
	0x26: {prefixHandler, none2Handler, 0, isegPrefix, 0, 0},
	0x27: {none1Handler, axImpHandler, FlagNotHLL | FlagB | FlagNoSrc, IDAA, SZC, 0},

	0x28: {modrmHandler, none2Handler, FlagB, ISUB, SZC, 0},
	0x29: {modrmHandler, none2Handler, 0, ISUB, SZC, 0},
	0x2A: {modrmHandler, none2Handler, FlagToReg | FlagB, ISUB, SZC, 0},
	0x2B: {modrmHandler, none2Handler, FlagToReg, ISUB, SZC, 0},
	0x2C: {data1Handler, axImpHandler, FlagB, ISUB, SZC, 0},
	0x2D: {data2Handler, axImpHandler, 0, ISUB, SZC, 0},
	0x2E: {prefixHandler, none2Handler, 0, isegPrefix, 0, 0},
	0x2F: {none1Handler, axImpHandler, FlagNotHLL | FlagB | FlagNoSrc, IDAS, SZC, 0},

	0x30: {modrmHandler, none2Handler, FlagB, IXOR, SZC, 0},
	0x31: {modrmHandler, none2Handler, FlagNSP, IXOR, SZC, 0},
	0x32: {modrmHandler, none2Handler, FlagToReg | FlagB, IXOR, SZC, 0},
	0x33: {modrmHandler, none2Handler, FlagToReg | FlagNSP, IXOR, SZC, 0},
	0x34: {data1Handler, axImpHandler, FlagB, IXOR, SZC, 0},
	0x35: {data2Handler, axImpHandler, 0, IXOR, SZC, 0},
	0x36: {prefixHandler, none2Handler, 0, isegPrefix, 0, 0},
	0x37: {none1Handler, axImpHandler, FlagNotHLL | FlagNoSrc, IAAA, SZC, 0},

	0x38: {modrmHandler, none2Handler, FlagB, ICMP, SZC, 0},
	0x39: {modrmHandler, none2Handler, FlagNSP, ICMP, SZC, 0},
	0x3A: {modrmHandler, none2Handler, FlagToReg | FlagB, ICMP, SZC, 0},
	0x3B: {modrmHandler, none2Handler, FlagToReg | FlagNSP, ICMP, SZC, 0},
	0x3C: {data1Handler, axImpHandler, FlagB, ICMP, SZC, 0},
	0x3D: {data2Handler, axImpHandler, 0, ICMP, SZC, 0},
	0x3E: {prefixHandler, none2Handler, 0, isegPrefix, 0, 0},
	0x3F: {none1Handler, axImpHandler, FlagNotHLL | FlagNoSrc, IAAS, SZC, 0},

	0x40: {regopHandler, none2Handler, 0, IINC, EflagS | EflagZ, 0},
	0x41: {regopHandler, none2Handler, 0, IINC, EflagS | EflagZ, 0},
	0x42: {regopHandler, none2Handler, 0, IINC, EflagS | EflagZ, 0},
	0x43: {regopHandler, none2Handler, 0, IINC, EflagS | EflagZ, 0},
	0x44: {regopHandler, none2Handler, FlagNotHLL, IINC, EflagS | EflagZ, 0},
	0x45: {regopHandler, none2Handler, 0, IINC, EflagS | EflagZ, 0},
	0x46: {regopHandler, none2Handler, 0, IINC, EflagS | EflagZ, 0},
	0x47: {regopHandler, none2Handler, 0, IINC, EflagS | EflagZ, 0},

	0x48: {regopHandler, none2Handler, 0, IDEC, EflagS | EflagZ, 0},
	0x49: {regopHandler, none2Handler, 0, IDEC, EflagS | EflagZ, 0},
	0x4A: {regopHandler, none2Handler, 0, IDEC, EflagS | EflagZ, 0},
	0x4B: {regopHandler, none2Handler, 0, IDEC, EflagS | EflagZ, 0},
	0x4C: {regopHandler, none2Handler, FlagNotHLL, IDEC, EflagS | EflagZ, 0},
	0x4D: {regopHandler, none2Handler, 0, IDEC, EflagS | EflagZ, 0},
	0x4E: {regopHandler, none2Handler, 0, IDEC, EflagS | EflagZ, 0},
	0x4F: {regopHandler, none2Handler, 0, IDEC, EflagS | EflagZ, 0},

	0x50: {regopHandler, none2Handler, FlagNoSrc, IPUSH, 0, 0},
	0x51: {regopHandler, none2Handler, FlagNoSrc, IPUSH, 0, 0},
	0x52: {regopHandler, none2Handler, FlagNoSrc, IPUSH, 0, 0},
	0x53: {regopHandler, none2Handler, FlagNoSrc, IPUSH, 0, 0},
	0x54: {regopHandler, none2Handler, FlagNotHLL | FlagNoSrc, IPUSH, 0, 0},
	0x55: {regopHandler, none2Handler, FlagNoSrc, IPUSH, 0, 0},
	0x56: {regopHandler, none2Handler, FlagNoSrc, IPUSH, 0, 0},
	0x57: {regopHandler, none2Handler, FlagNoSrc, IPUSH, 0, 0},

	0x58: {regopHandler, none2Handler, FlagNoSrc, IPOP, 0, 0},
	0x59: {regopHandler, none2Handler, FlagNoSrc, IPOP, 0, 0},
	0x5A: {regopHandler, none2Handler, FlagNoSrc, IPOP, 0, 0},
	0x5B: {regopHandler, none2Handler, FlagNoSrc, IPOP, 0, 0},
	0x5C: {regopHandler, none2Handler, FlagNotHLL | FlagNoSrc, IPOP, 0, 0},
	0x5D: {regopHandler, none2Handler, FlagNoSrc, IPOP, 0, 0},
	0x5E: {regopHandler, none2Handler, FlagNoSrc, IPOP, 0, 0},
	0x5F: {regopHandler, none2Handler, FlagNoSrc, IPOP, 0, 0},

	0x60: {none1Handler, none2Handler, FlagNotHLL | FlagNoOps, IPUSHA, 0, 0},
	0x61: {none1Handler, none2Handler, FlagNotHLL | FlagNoOps, IPOPA, 0, 0},
	0x62: {memOnlyHandler, modrmHandler, FlagToReg | FlagNSP, IBOUND, 0, 0},
	0x63: {none1Handler, none2Handler, FlagOp386, IZERO, 0, 0},
	0x64: {none1Handler, none2Handler, FlagOp386, IZERO, 0, 0},
	0x65: {none1Handler, none2Handler, FlagOp386, IZERO, 0, 0},
	0x66: {none1Handler, none2Handler, FlagOp386, IZERO, 0, 0},
	0x67: {none1Handler, none2Handler, FlagOp386, IZERO, 0, 0},

	0x68: {data2Handler, none2Handler, FlagNoSrc, IPUSH, 0, 0},
	0x69: {modrmHandler, data2Handler, FlagToReg | FlagNSP, IIMUL, SZC, 0},
	0x6A: {data1Handler, none2Handler, FlagSExt | FlagNoSrc, IPUSH, 0, 0},
	0x6B: {modrmHandler, data1Handler, FlagToReg | FlagNSP | FlagSExt, IIMUL, SZC, 0},
	0x6C: {stropHandler, memImpHandler, FlagNotHLL | FlagB | FlagImOps, IINS, 0, EflagD},
	0x6D: {stropHandler, memImpHandler, FlagNotHLL | FlagImOps, IINS, 0, EflagD},
	0x6E: {stropHandler, memImpHandler, FlagNotHLL | FlagB | FlagImOps, IOUTS, 0, EflagD},
	0x6F: {stropHandler, memImpHandler, FlagNotHLL | FlagImOps, IOUTS, 0, EflagD},

	0x70: {dispSHandler, none2Handler, FlagNotHLL, IJO, 0, 0},
	0x71: {dispSHandler, none2Handler, FlagNotHLL, IJNO, 0, 0},
	0x72: {dispSHandler, none2Handler, 0, IJB, 0, EflagC},
	0x73: {dispSHandler, none2Handler, 0, IJAE, 0, EflagC},
	0x74: {dispSHandler, none2Handler, 0, IJE, 0, EflagZ},
	0x75: {dispSHandler, none2Handler, 0, IJNE, 0, EflagZ},
	0x76: {dispSHandler, none2Handler, 0, IJBE, 0, EflagZ | EflagC},
	0x77: {dispSHandler, none2Handler, 0, IJA, 0, EflagZ | EflagC},
	0x78: {dispSHandler, none2Handler, 0, IJS, 0, EflagS},
	0x79: {dispSHandler, none2Handler, 0, IJNS, 0, EflagS},
	0x7A: {dispSHandler, none2Handler, FlagNotHLL, IJP, 0, 0},
	0x7B: {dispSHandler, none2Handler, FlagNotHLL, IJNP, 0, 0},
	0x7C: {dispSHandler, none2Handler, 0, IJL, 0, EflagS},
	0x7D: {dispSHandler, none2Handler, 0, IJGE, 0, EflagS},
	0x7E: {dispSHandler, none2Handler, 0, IJLE, 0, EflagS | EflagZ},
	0x7F: {dispSHandler, none2Handler, 0, IJG, 0, EflagS | EflagZ},

	0x80: {immedHandler, data1Handler, FlagB, IZERO, 0, 0},
	0x81: {immedHandler, data2Handler, FlagNSP, IZERO, 0, 0},
	0x82: {immedHandler, data1Handler, FlagB, IZERO, 0, 0},
	0x83: {immedHandler, data1Handler, FlagNSP | FlagSExt, IZERO, 0, 0},
	0x84: {modrmHandler, none2Handler, FlagToReg | FlagB, ITEST, SZC, 0},
	0x85: {modrmHandler, none2Handler, FlagToReg | FlagNSP, ITEST, SZC, 0},
	0x86: {modrmHandler, none2Handler, FlagToReg | FlagB, IXCHG, 0, 0},
	0x87: {modrmHandler, none2Handler, FlagToReg | FlagNSP, IXCHG, 0, 0},

	0x88: {modrmHandler, none2Handler, FlagB, IMOV, 0, 0},
	0x89: {modrmHandler, none2Handler, 0, IMOV, 0, 0},
	0x8A: {modrmHandler, none2Handler, FlagToReg | FlagB, IMOV, 0, 0},
	0x8B: {modrmHandler, none2Handler, FlagToReg, IMOV, 0, 0},
	0x8C: {segrmHandler, none2Handler, FlagNSP, IMOV, 0, 0},
	0x8D: {memOnlyHandler, modrmHandler, FlagToReg | FlagNSP, ILEA, 0, 0},
	0x8E: {segrmHandler, none2Handler, FlagToReg | FlagNSP, IMOV, 0, 0},
	0x8F: {memReg0Handler, none2Handler, FlagNoSrc, IPOP, 0, 0},

	0x90: {none1Handler, none2Handler, FlagNoOps, INOP, 0, 0},
	0x91: {regopHandler, axImpHandler, 0, IXCHG, 0, 0},
	0x92: {regopHandler, axImpHandler, 0, IXCHG, 0, 0},
	0x93: {regopHandler, axImpHandler, 0, IXCHG, 0, 0},
	0x94: {regopHandler, axImpHandler, FlagNotHLL, IXCHG, 0, 0},
	0x95: {regopHandler, axImpHandler, 0, IXCHG, 0, 0},
	0x96: {regopHandler, axImpHandler, 0, IXCHG, 0, 0},
	0x97: {regopHandler, axImpHandler, 0, IXCHG, 0, 0},

	0x98: {alSrcHandler, axImpHandler, FlagSrcB | FlagSExt, ISIGNEX, 0, 0},
	0x99: {axSrcHandler, axImpHandler, FlagImDst | FlagSExt, ISIGNEX, 0, 0},
	0x9A: {dispFHandler, none2Handler, 0, ICALLF, 0, 0},
	0x9B: {none1Handler, none2Handler, FlagFloatOp | FlagNoOps, IWAIT, 0, 0},
	0x9C: {none1Handler, none2Handler, FlagNotHLL | FlagNoOps, IPUSHF, 0, 0},
	0x9D: {none1Handler, none2Handler, FlagNotHLL | FlagNoOps, IPOPF, SZC | EflagD, 0},
	0x9E: {none1Handler, none2Handler, FlagNotHLL | FlagNoOps, ISAHF, SZC, 0},
	0x9F: {none1Handler, none2Handler, FlagNotHLL | FlagNoOps, ILAHF, 0, SZC},

	0xA0: {dispMHandler, axImpHandler, FlagB, IMOV, 0, 0},
	0xA1: {dispMHandler, axImpHandler, 0, IMOV, 0, 0},
	0xA2: {dispMHandler, axImpHandler, FlagToReg | FlagB, IMOV, 0, 0},
	0xA3: {dispMHandler, axImpHandler, FlagToReg, IMOV, 0, 0},
	0xA4: {stropHandler, memImpHandler, FlagB | FlagImOps, IMOVS, 0, EflagD},
	0xA5: {stropHandler, memImpHandler, FlagImOps, IMOVS, 0, EflagD},
	0xA6: {stropHandler, memImpHandler, FlagB | FlagImOps, ICMPS, SZC, EflagD},
	0xA7: {stropHandler, memImpHandler, FlagImOps, ICMPS, SZC, EflagD},

	0xA8: {data1Handler, axImpHandler, FlagB, ITEST, SZC, 0},
	0xA9: {data2Handler, axImpHandler, 0, ITEST, SZC, 0},
	0xAA: {stropHandler, memImpHandler, FlagB | FlagImOps, ISTOS, 0, EflagD},
	0xAB: {stropHandler, memImpHandler, FlagImOps, ISTOS, 0, EflagD},
	0xAC: {stropHandler, memImpHandler, FlagB | FlagImOps, ILODS, 0, EflagD},
	0xAD: {stropHandler, memImpHandler, FlagImOps, ILODS, 0, EflagD},
	0xAE: {stropHandler, memImpHandler, FlagB | FlagImOps, ISCAS, SZC, EflagD},
	0xAF: {stropHandler, memImpHandler, FlagImOps, ISCAS, SZC, EflagD},

	0xB0: {regopHandler, data1Handler, FlagB, IMOV, 0, 0},
	0xB1: {regopHandler, data1Handler, FlagB, IMOV, 0, 0},
	0xB2: {regopHandler, data1Handler, FlagB, IMOV, 0, 0},
	0xB3: {regopHandler, data1Handler, FlagB, IMOV, 0, 0},
	0xB4: {regopHandler, data1Handler, FlagB, IMOV, 0, 0},
	0xB5: {regopHandler, data1Handler, FlagB, IMOV, 0, 0},
	0xB6: {regopHandler, data1Handler, FlagB, IMOV, 0, 0},
	0xB7: {regopHandler, data1Handler, FlagB, IMOV, 0, 0},

	0xB8: {regopHandler, data2Handler, 0, IMOV, 0, 0},
	0xB9: {regopHandler, data2Handler, 0, IMOV, 0, 0},
	0xBA: {regopHandler, data2Handler, 0, IMOV, 0, 0},
	0xBB: {regopHandler, data2Handler, 0, IMOV, 0, 0},
	0xBC: {regopHandler, data2Handler, FlagNotHLL, IMOV, 0, 0},
	0xBD: {regopHandler, data2Handler, 0, IMOV, 0, 0},
	0xBE: {regopHandler, data2Handler, 0, IMOV, 0, 0},
	0xBF: {regopHandler, data2Handler, 0, IMOV, 0, 0},

	0xC0: {shiftHandler, data1Handler, FlagB, IZERO, 0, 0},
	0xC1: {shiftHandler, data1Handler, FlagNSP | FlagSrcB, IZERO, 0, 0},
	0xC2: {data2Handler, none2Handler, 0, IRET, 0, 0},
	0xC3: {none1Handler, none2Handler, FlagNoOps, IRET, 0, 0},
	0xC4: {memOnlyHandler, modrmHandler, FlagToReg | FlagNSP, ILES, 0, 0},
	0xC5: {memOnlyHandler, modrmHandler, FlagToReg | FlagNSP, ILDS, 0, 0},
	0xC6: {memReg0Handler, data1Handler, FlagB, IMOV, 0, 0},
	0xC7: {memReg0Handler, data2Handler, 0, IMOV, 0, 0},

	0xC8: {data2Handler, data1Handler, 0, IENTER, 0, 0},
	0xC9: {none1Handler, none2Handler, FlagNoOps, ILEAVE, 0, 0},
	0xCA: {data2Handler, none2Handler, 0, IRETF, 0, 0},
	0xCB: {none1Handler, none2Handler, FlagNoOps, IRETF, 0, 0},
	0xCC: {const3Handler, none2Handler, FlagNotHLL, IINT, 0, 0},
	0xCD: {data1Handler, checkIntHandler, FlagNotHLL, IINT, 0, 0},
	0xCE: {none1Handler, none2Handler, FlagNotHLL | FlagNoOps, IINTO, 0, 0},
	0xCF: {none1Handler, none2Handler, FlagNotHLL | FlagNoOps, IIRET, 0, 0},

	0xD0: {shiftHandler, const1Handler, FlagB, IZERO, 0, 0},
	0xD1: {shiftHandler, const1Handler, FlagSrcB, IZERO, 0, 0},
	0xD2: {shiftHandler, none1Handler, FlagB, IZERO, 0, 0},
	0xD3: {shiftHandler, none1Handler, FlagSrcB, IZERO, 0, 0},
	0xD4: {data1Handler, axImpHandler, FlagNotHLL, IAAM, SZC, 0},
	0xD5: {data1Handler, axImpHandler, FlagNotHLL, IAAD, SZC, 0},
	0xD6: {none1Handler, none2Handler, 0, IZERO, 0, 0},
	0xD7: {memImpHandler, axImpHandler, FlagNotHLL | FlagB | FlagImOps, IXLAT, 0, 0},

	0xD8: {escopHandler, none2Handler, FlagFloatOp, IESC, 0, 0},
	0xD9: {escopHandler, none2Handler, FlagFloatOp, IESC, 0, 0},
	0xDA: {escopHandler, none2Handler, FlagFloatOp, IESC, 0, 0},
	0xDB: {escopHandler, none2Handler, FlagFloatOp, IESC, 0, 0},
	0xDC: {escopHandler, none2Handler, FlagFloatOp, IESC, 0, 0},
	0xDD: {escopHandler, none2Handler, FlagFloatOp, IESC, 0, 0},
	0xDE: {escopHandler, none2Handler, FlagFloatOp, IESC, 0, 0},
	0xDF: {escopHandler, none2Handler, FlagFloatOp, IESC, 0, 0},

	0xE0: {dispSHandler, none2Handler, 0, ILOOPNE, 0, EflagZ},
	0xE1: {dispSHandler, none2Handler, 0, ILOOPE, 0, EflagZ},
	0xE2: {dispSHandler, none2Handler, 0, ILOOP, 0, 0},
	0xE3: {dispSHandler, none2Handler, 0, IJCXZ, 0, 0},
	0xE4: {data1Handler, axImpHandler, FlagNotHLL | FlagB | FlagNoSrc, IIN, 0, 0},
	0xE5: {data1Handler, axImpHandler, FlagNotHLL | FlagNoSrc, IIN, 0, 0},
	0xE6: {data1Handler, alSrcHandler, FlagNotHLL | FlagB | FlagNoSrc, IOUT, 0, 0},
	0xE7: {data1Handler, axSrcHandler, FlagNotHLL | FlagNoSrc, IOUT, 0, 0},

	0xE8: {dispNHandler, none2Handler, 0, ICALL, 0, 0},
	0xE9: {dispNHandler, none2Handler, 0, IJMP, 0, 0},
	0xEA: {dispFHandler, none2Handler, 0, IJMPF, 0, 0},
	0xEB: {dispSHandler, none2Handler, 0, IJMP, 0, 0},
	0xEC: {none1Handler, axImpHandler, FlagNotHLL | FlagB | FlagNoSrc, IIN, 0, 0},
	0xED: {none1Handler, axImpHandler, FlagNotHLL | FlagNoSrc, IIN, 0, 0},
	0xEE: {none1Handler, alSrcHandler, FlagNotHLL | FlagB | FlagNoSrc, IOUT, 0, 0},
	0xEF: {none1Handler, axSrcHandler, FlagNotHLL | FlagNoSrc, IOUT, 0, 0},

	0xF0: {none1Handler, none2Handler, FlagNotHLL | FlagNoOps, ILOCK, 0, 0},
	0xF1: {none1Handler, none2Handler, 0, IZERO, 0, 0},
	0xF2: {prefixHandler, none2Handler, 0, IREPNE, 0, 0},
	0xF3: {prefixHandler, none2Handler, 0, IREPE, 0, 0},
	0xF4: {none1Handler, none2Handler, FlagNotHLL | FlagNoOps, IHLT, 0, 0},
	0xF5: {none1Handler, none2Handler, FlagNoOps, ICMC, EflagC, EflagC},
	0xF6: {arithHandler, none1Handler, FlagB, IZERO, 0, 0},
	0xF7: {arithHandler, none1Handler, FlagNSP, IZERO, 0, 0},

	0xF8: {none1Handler, none2Handler, FlagNoOps, ICLC, EflagC, 0},
	0xF9: {none1Handler, none2Handler, FlagNoOps, ISTC, EflagC, 0},
	0xFA: {none1Handler, none2Handler, FlagNotHLL | FlagNoOps, ICLI, 0, 0},
	0xFB: {none1Handler, none2Handler, FlagNotHLL | FlagNoOps, ISTI, 0, 0},
	0xFC: {none1Handler, none2Handler, FlagNoOps, ICLD, EflagD, 0},
	0xFD: {none1Handler, none2Handler, FlagNoOps, ISTD, EflagD, 0},
	0xFE: {transHandler, none1Handler, FlagB, IZERO, 0, 0},
	0xFF: {transHandler, none1Handler, FlagNSP, IZERO, 0, 0},
}
